package world

import "strings"

// Container statuses.
const (
	ContainerRunning = "running"
	ContainerExited  = "exited"
)

// Container is one entry of the simulated container runtime.
type Container struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Status string `json:"status"`
	Ports  string `json:"ports"`
}

// Pod statuses.
const (
	PodRunning = "Running"
	PodPending = "Pending"
)

// Pod is one entry of the simulated cluster's pod list. Deployment names
// the deployment the pod belongs to; it is informational only.
type Pod struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Namespace  string `json:"namespace"`
	Deployment string `json:"deployment"`
}

// Deployment tracks a replica count for the simulated cluster.
type Deployment struct {
	Name     string `json:"name"`
	Replicas int    `json:"replicas"`
}

// FindContainer resolves a name or ID prefix to a container, scanning in
// listed order and returning the first match.
func (s *State) FindContainer(token string) (*Container, bool) {
	for _, c := range s.Containers {
		if c.Name == token || strings.HasPrefix(c.ID, token) {
			return c, true
		}
	}
	return nil, false
}

// ContainerByID returns the container with the exact ID.
func (s *State) ContainerByID(id string) (*Container, bool) {
	for _, c := range s.Containers {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Pod returns the pod with the given name.
func (s *State) Pod(name string) (*Pod, bool) {
	for _, p := range s.Pods {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Deployment returns the deployment with the given name.
func (s *State) Deployment(name string) (*Deployment, bool) {
	for _, d := range s.Deployments {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

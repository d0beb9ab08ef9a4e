package shell

import (
	"fmt"
	"strings"

	"sysdrill/pkg/world"
)

const dockerPSHeader = "CONTAINER ID   IMAGE           COMMAND         CREATED         STATUS          PORTS               NAMES"

const (
	dbServiceLogs = "[2024-05-23 10:00:00] DB_SERVICE: Starting up...\n[2024-05-23 10:00:05] DB_SERVICE: Connection successful."
	webAppLogs    = "[2024-05-23 10:00:00] NGINX: Worker process started.\n[2024-05-23 10:00:01] NGINX: Exiting due to configuration error."
)

const podHeader = "NAME                             READY   STATUS    RESTARTS   AGE"

const deploymentHeader = "NAME         READY   UP-TO-DATE   AVAILABLE   AGE"

// pendingPodName is the seeded pod the scheduler cannot place; describe
// prints its scripted event trail.
const pendingPodName = "backend-efgh-67890"

const pendingPodDescribe = `Name:         backend-efgh-67890
Namespace:    default
Status:       Pending
Events:
  Type     Reason            Age    From               Message
  ----     ------            ----   ----               -------
  Warning  FailedScheduling  5m     default-scheduler  0/1 nodes are available: 1 Insufficient cpu.`

const describeTemplate = `Name:         %s
Namespace:    %s
Status:       %s
IP:           10.42.0.1
Events:
  Type     Reason            Age    From               Message
  ----     ------            ----   ----               -------
  Normal   Pulled            2m     kubelet            Container image "nginx" already present on machine`

// DockerPS lists the containers in seed order.
type DockerPS struct{}

func (DockerPS) Verb() string { return "docker" }

func (DockerPS) Simulate(st *world.State) Result {
	lines := []string{dockerPSHeader}
	for _, ct := range st.Containers {
		id := ct.ID
		if len(id) > 12 {
			id = id[:12]
		}
		lines = append(lines, fmt.Sprintf(
			"%s   %-15s \"nginx -g 'dae...\"   2 days ago      %s       %-19s %s",
			id, ct.Image, ct.Status, ct.Ports, ct.Name,
		))
	}
	return success(strings.Join(lines, "\n"))
}

// DockerStart brings a container up by name or ID prefix.
type DockerStart struct {
	Target string
}

func (DockerStart) Verb() string { return "docker" }

func (c DockerStart) Simulate(st *world.State) Result {
	ct, ok := st.FindContainer(c.Target)
	if !ok {
		return failure(fmt.Sprintf("Error: No such container: %s", c.Target), "")
	}
	res := Result{
		Output:  c.Target,
		Success: true,
		Message: fmt.Sprintf("Container %s started.", c.Target),
	}
	ch := world.ContainerStatusChange{ID: ct.ID, Status: world.ContainerRunning}
	if ch.Apply(st) {
		res.Changes = []world.Change{ch}
	}
	return res
}

// DockerStop takes a container down by name or ID prefix.
type DockerStop struct {
	Target string
}

func (DockerStop) Verb() string { return "docker" }

func (c DockerStop) Simulate(st *world.State) Result {
	ct, ok := st.FindContainer(c.Target)
	if !ok {
		return failure(fmt.Sprintf("Error: No such container: %s", c.Target), "")
	}
	res := Result{
		Output:  c.Target,
		Success: true,
		Message: fmt.Sprintf("Container %s stopped.", c.Target),
	}
	ch := world.ContainerStatusChange{ID: ct.ID, Status: world.ContainerExited}
	if ch.Apply(st) {
		res.Changes = []world.Change{ch}
	}
	return res
}

// DockerLogs prints the scripted log tails for the two seeded containers.
type DockerLogs struct {
	Target string
}

func (DockerLogs) Verb() string { return "docker" }

func (c DockerLogs) Simulate(st *world.State) Result {
	switch c.Target {
	case "db_service":
		return success(dbServiceLogs)
	case "web_app_prod":
		return success(webAppLogs)
	}
	return failure(fmt.Sprintf("Error: No logs found for container: %s", c.Target), "")
}

// KubectlGet lists pods or deployments.
type KubectlGet struct {
	Resource string
}

func (KubectlGet) Verb() string { return "kubectl" }

func (c KubectlGet) Simulate(st *world.State) Result {
	if c.Resource == "pods" {
		lines := []string{podHeader}
		for _, p := range st.Pods {
			lines = append(lines, fmt.Sprintf("%-32s1/1     %s   0          2h", p.Name, p.Status))
		}
		return success(strings.Join(lines, "\n"))
	}
	lines := []string{deploymentHeader}
	for _, d := range st.Deployments {
		lines = append(lines, fmt.Sprintf("%-11s%d/%d     %d            %d           2d",
			d.Name, d.Replicas, d.Replicas, d.Replicas, d.Replicas))
	}
	return success(strings.Join(lines, "\n"))
}

// KubectlDescribe prints pod details. The pending backend pod has a
// scripted event trail pointing at the scheduling failure.
type KubectlDescribe struct {
	Pod string
}

func (KubectlDescribe) Verb() string { return "kubectl" }

func (c KubectlDescribe) Simulate(st *world.State) Result {
	if c.Pod == pendingPodName {
		return success(pendingPodDescribe)
	}
	if p, ok := st.Pod(c.Pod); ok {
		return success(fmt.Sprintf(describeTemplate, p.Name, p.Namespace, p.Status))
	}
	return failure(fmt.Sprintf("Error from server (NotFound): pods \"%s\" not found", c.Pod), "")
}

// KubectlScale sets a deployment's replica count. Scaling the backend
// above zero also unblocks its pending pod, which is the fix for the
// cluster scenario.
type KubectlScale struct {
	Deployment string
	Replicas   int
}

func (KubectlScale) Verb() string { return "kubectl" }

func (c KubectlScale) Simulate(st *world.State) Result {
	if _, ok := st.Deployment(c.Deployment); !ok {
		return failure(fmt.Sprintf("Error: deployment.apps/%s not found or failed to scale.", c.Deployment), "")
	}
	res := Result{
		Output:  fmt.Sprintf("deployment.apps/%s scaled", c.Deployment),
		Success: true,
		Message: fmt.Sprintf("Deployment '%s' scaled to %d replicas.", c.Deployment, c.Replicas),
	}
	ch := world.DeploymentScaleChange{Name: c.Deployment, Replicas: c.Replicas}
	if ch.Apply(st) {
		res.Changes = append(res.Changes, ch)
	}
	if c.Deployment == "backend" && c.Replicas > 0 {
		pc := world.PodStatusChange{Name: pendingPodName, Status: world.PodRunning}
		if pc.Apply(st) {
			res.Changes = append(res.Changes, pc)
		}
	}
	return res
}

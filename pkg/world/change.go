package world

import "strings"

// Change kinds as they appear in level catalogs and logs.
const (
	KindProcessState    = "process_state"
	KindContainerStatus = "container_status"
	KindPodStatus       = "pod_status"
	KindDeploymentScale = "deployment_scale"
	KindDirCreate       = "add_dir"
	KindFileDelete      = "delete_file"
	KindEntryMove       = "move_entry"
	KindEntryCopy       = "copy_entry"
)

// Change is one committed mutation of the world. Applying a change is
// idempotent: when there is nothing left to do (target missing, value
// already set) Apply reports false and leaves the state untouched.
type Change interface {
	// Kind names the change type.
	Kind() string
	// Apply commits the change, reporting whether anything was modified.
	Apply(s *State) bool
}

// ProcessStateChange flips a process to a new lifecycle state.
type ProcessStateChange struct {
	PID   int       `json:"pid"`
	State ProcState `json:"state"`
}

func (c ProcessStateChange) Kind() string { return KindProcessState }

func (c ProcessStateChange) Apply(s *State) bool {
	p, ok := s.Process(c.PID)
	if !ok || p.State == c.State {
		return false
	}
	p.State = c.State
	return true
}

// ContainerStatusChange sets a container's status by exact ID.
type ContainerStatusChange struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (c ContainerStatusChange) Kind() string { return KindContainerStatus }

func (c ContainerStatusChange) Apply(s *State) bool {
	ct, ok := s.ContainerByID(c.ID)
	if !ok || ct.Status == c.Status {
		return false
	}
	ct.Status = c.Status
	return true
}

// PodStatusChange sets a pod's status by name.
type PodStatusChange struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (c PodStatusChange) Kind() string { return KindPodStatus }

func (c PodStatusChange) Apply(s *State) bool {
	p, ok := s.Pod(c.Name)
	if !ok || p.Status == c.Status {
		return false
	}
	p.Status = c.Status
	return true
}

// DeploymentScaleChange sets a deployment's replica count.
type DeploymentScaleChange struct {
	Name     string `json:"name"`
	Replicas int    `json:"replicas"`
}

func (c DeploymentScaleChange) Kind() string { return KindDeploymentScale }

func (c DeploymentScaleChange) Apply(s *State) bool {
	d, ok := s.Deployment(c.Name)
	if !ok || d.Replicas == c.Replicas || c.Replicas < 0 {
		return false
	}
	d.Replicas = c.Replicas
	return true
}

// DirCreateChange creates an empty directory Name under the existing
// directory Path.
type DirCreateChange struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

func (c DirCreateChange) Kind() string { return KindDirCreate }

func (c DirCreateChange) Apply(s *State) bool {
	if c.Name == "" || strings.Contains(c.Name, "/") {
		return false
	}
	parent, ok := s.Dir(c.Path)
	if !ok {
		return false
	}
	if _, exists := parent.Lookup(c.Name); exists {
		return false
	}
	parent.Put(c.Name, NewDir())
	return true
}

// FileDeleteChange removes the entry at an absolute path. Deleting a
// directory drops its subtree.
type FileDeleteChange struct {
	Path string `json:"path"`
}

func (c FileDeleteChange) Kind() string { return KindFileDelete }

func (c FileDeleteChange) Apply(s *State) bool {
	parts := SplitPath(c.Path)
	if len(parts) == 0 {
		return false
	}
	parent, ok := s.Dir("/" + strings.Join(parts[:len(parts)-1], "/"))
	if !ok {
		return false
	}
	return parent.Remove(parts[len(parts)-1])
}

// EntryMoveChange relocates the entry at Src to Dst, keeping the node.
// An existing Dst entry is replaced.
type EntryMoveChange struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

func (c EntryMoveChange) Kind() string { return KindEntryMove }

func (c EntryMoveChange) Apply(s *State) bool {
	srcParts := SplitPath(c.Src)
	if len(srcParts) == 0 {
		return false
	}
	srcParent, ok := s.Dir("/" + strings.Join(srcParts[:len(srcParts)-1], "/"))
	if !ok {
		return false
	}
	srcName := srcParts[len(srcParts)-1]
	entry, ok := srcParent.Lookup(srcName)
	if !ok {
		return false
	}
	dstParts := SplitPath(c.Dst)
	if len(dstParts) == 0 {
		return false
	}
	dstParent, ok := s.Dir("/" + strings.Join(dstParts[:len(dstParts)-1], "/"))
	if !ok {
		return false
	}
	if srcDir, isDir := entry.(*Dir); isDir && srcDir.Contains(dstParent) {
		return false
	}
	srcParent.Remove(srcName)
	dstParent.Put(dstParts[len(dstParts)-1], entry)
	return true
}

// EntryCopyChange deep-copies the entry at Src to Dst. An existing Dst
// is left alone, so re-application is a no-op.
type EntryCopyChange struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

func (c EntryCopyChange) Kind() string { return KindEntryCopy }

func (c EntryCopyChange) Apply(s *State) bool {
	entry, ok := s.Resolve(c.Src)
	if !ok {
		return false
	}
	dstParts := SplitPath(c.Dst)
	if len(dstParts) == 0 {
		return false
	}
	dstParent, ok := s.Dir("/" + strings.Join(dstParts[:len(dstParts)-1], "/"))
	if !ok {
		return false
	}
	if _, exists := dstParent.Lookup(dstParts[len(dstParts)-1]); exists {
		return false
	}
	dstParent.Put(dstParts[len(dstParts)-1], CloneEntry(entry))
	return true
}

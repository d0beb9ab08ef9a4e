package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysdrill/pkg/world"
)

func TestProcessStateChange(t *testing.T) {
	st := world.NewState()
	ch := world.ProcessStateChange{PID: 1234, State: world.ProcRunning}

	assert.True(t, ch.Apply(st))
	p, _ := st.Process(1234)
	assert.Equal(t, world.ProcRunning, p.State)

	assert.False(t, ch.Apply(st), "reapplying must be a no-op")
	assert.False(t, world.ProcessStateChange{PID: 42, State: world.ProcRunning}.Apply(st))
}

func TestContainerStatusChange(t *testing.T) {
	st := world.NewState()
	ch := world.ContainerStatusChange{ID: "a1b2c3d4e5f6", Status: world.ContainerRunning}

	assert.True(t, ch.Apply(st))
	ct, _ := st.ContainerByID("a1b2c3d4e5f6")
	assert.Equal(t, world.ContainerRunning, ct.Status)
	assert.False(t, ch.Apply(st))

	assert.False(t, world.ContainerStatusChange{ID: "nope", Status: world.ContainerExited}.Apply(st))
}

func TestPodStatusChange(t *testing.T) {
	st := world.NewState()
	ch := world.PodStatusChange{Name: "backend-efgh-67890", Status: world.PodRunning}

	assert.True(t, ch.Apply(st))
	p, _ := st.Pod("backend-efgh-67890")
	assert.Equal(t, world.PodRunning, p.Status)
	assert.False(t, ch.Apply(st))
}

func TestDeploymentScaleChange(t *testing.T) {
	st := world.NewState()

	assert.True(t, world.DeploymentScaleChange{Name: "backend", Replicas: 3}.Apply(st))
	d, _ := st.Deployment("backend")
	assert.Equal(t, 3, d.Replicas)

	assert.False(t, world.DeploymentScaleChange{Name: "backend", Replicas: 3}.Apply(st))
	assert.False(t, world.DeploymentScaleChange{Name: "backend", Replicas: -1}.Apply(st))
	assert.False(t, world.DeploymentScaleChange{Name: "ghost", Replicas: 1}.Apply(st))
}

func TestDirCreateChange(t *testing.T) {
	st := world.NewState()
	ch := world.DirCreateChange{Path: "/home/sysadmin/reports", Name: "archive"}

	assert.True(t, ch.Apply(st))
	_, ok := st.Dir("/home/sysadmin/reports/archive")
	assert.True(t, ok)

	assert.False(t, ch.Apply(st), "directory already exists")
	assert.False(t, world.DirCreateChange{Path: "/no/such", Name: "x"}.Apply(st))
	assert.False(t, world.DirCreateChange{Path: "/tmp", Name: "a/b"}.Apply(st))
	assert.False(t, world.DirCreateChange{Path: "/tmp", Name: ""}.Apply(st))
}

func TestFileDeleteChange(t *testing.T) {
	st := world.NewState()
	ch := world.FileDeleteChange{Path: "/var/log/syslog"}

	assert.True(t, ch.Apply(st))
	_, ok := st.FileContent("/var/log/syslog")
	assert.False(t, ok)

	assert.False(t, ch.Apply(st), "file already gone")
	assert.False(t, world.FileDeleteChange{Path: "/"}.Apply(st))
}

func TestFileDeleteChangeDropsSubtree(t *testing.T) {
	st := world.NewState()

	require.True(t, world.FileDeleteChange{Path: "/home/sysadmin/documents"}.Apply(st))
	_, ok := st.Resolve("/home/sysadmin/documents/important_doc.txt")
	assert.False(t, ok)
}

func TestEntryMoveChange(t *testing.T) {
	st := world.NewState()
	ch := world.EntryMoveChange{
		Src: "/home/sysadmin/documents/important_doc.txt",
		Dst: "/home/sysadmin/reports/important_doc.txt",
	}

	assert.True(t, ch.Apply(st))
	_, ok := st.FileContent("/home/sysadmin/documents/important_doc.txt")
	assert.False(t, ok)
	_, ok = st.FileContent("/home/sysadmin/reports/important_doc.txt")
	assert.True(t, ok)

	assert.False(t, ch.Apply(st), "source is gone after the move")
	assert.False(t, world.EntryMoveChange{Src: "/nope", Dst: "/tmp/x"}.Apply(st))
	assert.False(t, world.EntryMoveChange{Src: "/var/log", Dst: "/no/such/dst"}.Apply(st))
	assert.False(t, world.EntryMoveChange{Src: "/home", Dst: "/home/sysadmin/home"}.Apply(st),
		"cannot move a directory into itself")
}

func TestEntryCopyChange(t *testing.T) {
	st := world.NewState()
	ch := world.EntryCopyChange{
		Src: "/home/sysadmin/documents/important_doc.txt",
		Dst: "/home/sysadmin/reports/important_doc.txt",
	}

	assert.True(t, ch.Apply(st))
	src, ok := st.FileContent("/home/sysadmin/documents/important_doc.txt")
	require.True(t, ok, "copy leaves the source in place")
	dst, ok := st.FileContent("/home/sysadmin/reports/important_doc.txt")
	require.True(t, ok)
	assert.Equal(t, src, dst)

	assert.False(t, ch.Apply(st), "destination already exists")
	assert.False(t, world.EntryCopyChange{Src: "/nope", Dst: "/tmp/x"}.Apply(st))
	assert.False(t, world.EntryCopyChange{Src: "/var/log", Dst: "/no/such/dst"}.Apply(st))
}

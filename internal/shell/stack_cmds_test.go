package shell_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysdrill/internal/shell"
	"sysdrill/pkg/world"
)

func TestDockerPS(t *testing.T) {
	st := world.NewState()
	res := shell.Eval(st, "docker ps")

	require.True(t, res.Success)
	lines := strings.Split(res.Output, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "CONTAINER ID   IMAGE           COMMAND         CREATED         STATUS          PORTS               NAMES", lines[0])
	assert.Contains(t, lines[1], "a1b2c3d4e5f6")
	assert.Contains(t, lines[1], "exited")
	assert.Contains(t, lines[1], "web_app_prod")
	assert.Contains(t, lines[2], "db_service")
	assert.Contains(t, lines[2], "running")
}

func TestDockerStartAndStop(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "docker start web_app_prod")
	require.True(t, res.Success)
	assert.Equal(t, "web_app_prod", res.Output)
	assert.Equal(t, "Container web_app_prod started.", res.Message)
	require.Len(t, res.Changes, 1)
	assert.Equal(t, world.KindContainerStatus, res.Changes[0].Kind())

	ct, _ := st.ContainerByID("a1b2c3d4e5f6")
	assert.Equal(t, world.ContainerRunning, ct.Status)

	res = shell.Eval(st, "docker start web_app_prod")
	require.True(t, res.Success, "starting a running container still succeeds")
	assert.Empty(t, res.Changes)

	res = shell.Eval(st, "docker stop b2c3")
	require.True(t, res.Success, "ID prefixes resolve containers")
	assert.Equal(t, "Container b2c3 stopped.", res.Message)
	db, _ := st.ContainerByID("b2c3d4e5f6a7")
	assert.Equal(t, world.ContainerExited, db.Status)

	res = shell.Eval(st, "docker start ghost")
	assert.False(t, res.Success)
	assert.Equal(t, "Error: No such container: ghost", res.Output)
}

func TestDockerLogs(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "docker logs web_app_prod")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Exiting due to configuration error.")

	res = shell.Eval(st, "docker logs db_service")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Connection successful.")

	res = shell.Eval(st, "docker logs ghost")
	assert.False(t, res.Success)
	assert.Equal(t, "Error: No logs found for container: ghost", res.Output)
}

func TestKubectlGet(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "kubectl get pods")
	require.True(t, res.Success)
	lines := strings.Split(res.Output, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME                             READY   STATUS    RESTARTS   AGE", lines[0])
	assert.Contains(t, lines[2], "backend-efgh-67890")
	assert.Contains(t, lines[2], "Pending")

	res = shell.Eval(st, "kubectl get deployments")
	require.True(t, res.Success)
	lines = strings.Split(res.Output, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME         READY   UP-TO-DATE   AVAILABLE   AGE", lines[0])
	assert.Contains(t, lines[3], "nginx-app")
	assert.Contains(t, lines[3], "2/2")
}

func TestKubectlDescribe(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "kubectl describe pod backend-efgh-67890")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Status:       Pending")
	assert.Contains(t, res.Output, "0/1 nodes are available: 1 Insufficient cpu.")

	res = shell.Eval(st, "kubectl describe pod frontend-abcd-12345")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Namespace:    default")
	assert.Contains(t, res.Output, "IP:           10.42.0.1")

	res = shell.Eval(st, "kubectl describe pod ghost-pod")
	assert.False(t, res.Success)
	assert.Equal(t, `Error from server (NotFound): pods "ghost-pod" not found`, res.Output)
}

func TestKubectlScale(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "kubectl scale deployment backend --replicas=2")
	require.True(t, res.Success)
	assert.Equal(t, "deployment.apps/backend scaled", res.Output)
	require.Len(t, res.Changes, 2, "replica change plus the pod coming up")

	d, _ := st.Deployment("backend")
	assert.Equal(t, 2, d.Replicas)
	p, _ := st.Pod("backend-efgh-67890")
	assert.Equal(t, world.PodRunning, p.Status)

	res = shell.Eval(st, "kubectl scale deployment frontend --replicas=3")
	require.True(t, res.Success)
	require.Len(t, res.Changes, 1, "only the backend scenario touches pods")

	res = shell.Eval(st, "kubectl scale deployment ghost --replicas=1")
	assert.False(t, res.Success)
	assert.Equal(t, "Error: deployment.apps/ghost not found or failed to scale.", res.Output)
}

func TestUnknownVerb(t *testing.T) {
	st := world.NewState()
	res := shell.Eval(st, "vim /etc/passwd")

	assert.False(t, res.Success)
	assert.Equal(t, "bash: vim: command not found", res.Output)
	assert.Equal(t, "Unknown command: vim", res.Message)
	assert.Equal(t, "vim", res.Verb)
}

func TestEvalEmptyLine(t *testing.T) {
	st := world.NewState()
	res := shell.Eval(st, "   ")

	assert.False(t, res.Success)
	assert.Empty(t, res.Output)
	assert.Empty(t, res.Message)
}

package shell_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysdrill/internal/shell"
	"sysdrill/pkg/world"
)

func TestListDirectoriesGetTrailingSlash(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "ls /")
	require.True(t, res.Success)
	assert.Equal(t, "bin/\netc/\nhome/\ntmp/\nvar/", res.Output)

	res = shell.Eval(st, "ls /etc")
	require.True(t, res.Success)
	assert.Equal(t, "apache2/\nmy_app_conf/\nnginx/\npasswd", res.Output)
}

func TestListFileEchoesPath(t *testing.T) {
	st := world.NewState()
	res := shell.Eval(st, "ls /etc/passwd")

	require.True(t, res.Success)
	assert.Equal(t, "/etc/passwd", res.Output)
}

func TestListMissingPath(t *testing.T) {
	st := world.NewState()
	res := shell.Eval(st, "ls /nope")

	assert.False(t, res.Success)
	assert.Equal(t, "ls: cannot access '/nope': No such file or directory", res.Output)
}

func TestChangeDir(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "cd")
	assert.True(t, res.Success)
	assert.Equal(t, "Changed to home directory (simulated).", res.Message)

	res = shell.Eval(st, "cd /var/log")
	assert.True(t, res.Success)
	assert.Equal(t, "Changed directory to /var/log (simulated).", res.Message)

	res = shell.Eval(st, "cd /etc/passwd")
	assert.False(t, res.Success)
	assert.Equal(t, "cd: /etc/passwd: Not a directory", res.Output)

	res = shell.Eval(st, "cd /missing")
	assert.False(t, res.Success)
	assert.Equal(t, "cd: /missing: No such file or directory", res.Output)
}

func TestCatAndGrep(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "cat /var/log/syslog")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "No space left on device")

	res = shell.Eval(st, "grep apache2 /var/log/syslog")
	require.True(t, res.Success)
	for _, line := range strings.Split(res.Output, "\n") {
		assert.Contains(t, line, "apache2")
	}

	res = shell.Eval(st, "grep anything /no/file")
	assert.False(t, res.Success)
	assert.Equal(t, "grep: /no/file: No such file or directory", res.Output)
}

func TestDiskUsageScenario(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "du -sh /var/log")
	require.True(t, res.Success)
	assert.Equal(t, "1.5G    /var/log", res.Output)

	res = shell.Eval(st, "du -sh /var/log/*")
	require.True(t, res.Success)
	assert.Equal(t, "1.4G    /var/log/syslog\n8.0K    /var/log/auth.log\n4.0K    /var/log/kern.log", res.Output)

	res = shell.Eval(st, "rm /var/log/syslog")
	require.True(t, res.Success)

	res = shell.Eval(st, "du -sh /var/log")
	assert.Equal(t, "12K    /var/log", res.Output)

	res = shell.Eval(st, "du -sh /var/log/*")
	assert.Equal(t, "8.0K    /var/log/auth.log\n4.0K    /var/log/kern.log", res.Output)

	res = shell.Eval(st, "du -sh /tmp")
	assert.Equal(t, "4.0K    /tmp", res.Output)
}

func TestRemove(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "rm /var/log/syslog")
	require.True(t, res.Success)
	assert.Equal(t, "Successfully removed /var/log/syslog.", res.Message)
	require.Len(t, res.Changes, 1)
	assert.Equal(t, world.KindFileDelete, res.Changes[0].Kind())

	res = shell.Eval(st, "cat /var/log/syslog")
	assert.False(t, res.Success)
	assert.Equal(t, "cat: /var/log/syslog: No such file or directory", res.Output)

	res = shell.Eval(st, "rm /var/log/syslog")
	assert.False(t, res.Success)
	assert.Equal(t, "rm: cannot remove '/var/log/syslog': No such file or directory", res.Output)
	assert.Equal(t, "Failed to remove file/directory.", res.Message)
	assert.Empty(t, res.Changes)
}

func TestMakeDir(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "mkdir /home/sysadmin/reports/archive")
	require.True(t, res.Success)
	assert.Equal(t, "Directory '/home/sysadmin/reports/archive' created.", res.Message)
	require.Len(t, res.Changes, 1)
	assert.Equal(t, world.KindDirCreate, res.Changes[0].Kind())

	res = shell.Eval(st, "mkdir /home/sysadmin/reports/archive")
	assert.False(t, res.Success)
	assert.Equal(t, "mkdir: cannot create directory '/home/sysadmin/reports/archive': File exists or parent path not found", res.Output)

	res = shell.Eval(st, "mkdir /no/parent/here")
	assert.False(t, res.Success)

	res = shell.Eval(st, "mkdir /")
	assert.False(t, res.Success)
	assert.Equal(t, "mkdir: cannot create directory '/': File exists", res.Output)
}

func TestFind(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "find / -name syslog")
	require.True(t, res.Success)
	assert.Equal(t, "/var/log/syslog", res.Output)

	res = shell.Eval(st, "find /etc -name CONF")
	require.True(t, res.Success)
	assert.Equal(t, "/etc/apache2/apache2.conf\n/etc/my_app_conf\n/etc/my_app_conf/app.conf\n/etc/nginx/nginx.conf", res.Output)

	res = shell.Eval(st, "find /tmp -name anything")
	require.True(t, res.Success)
	assert.Empty(t, res.Output)
	assert.Equal(t, "No matching files found.", res.Message)

	res = shell.Eval(st, "find /ghost -name x")
	assert.False(t, res.Success)
	assert.Equal(t, "find: '/ghost': No such file or directory", res.Output)
}

func TestHeadAndTail(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "head -n2 /var/log/syslog")
	require.True(t, res.Success)
	lines := strings.Split(res.Output, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Started Session 1")

	res = shell.Eval(st, "tail -n 1 /var/log/syslog")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "CRON[12345]")

	res = shell.Eval(st, "head -n100 /var/log/syslog")
	require.True(t, res.Success)
	assert.Len(t, strings.Split(res.Output, "\n"), 7)

	res = shell.Eval(st, "head /missing")
	assert.False(t, res.Success)
	assert.Equal(t, "head: /missing: No such file or directory", res.Output)
}

func TestChmodIsAdvisory(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "chmod 600 /etc/passwd")
	require.True(t, res.Success)
	assert.Equal(t, "Permissions of '/etc/passwd' changed to '600' (simulated).", res.Message)
	assert.Empty(t, res.Changes)

	res = shell.Eval(st, "chmod 600 /nope")
	assert.False(t, res.Success)
	assert.Equal(t, "chmod: cannot access '/nope': No such file or directory", res.Output)
}

func TestMove(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "mv /home/sysadmin/documents/important_doc.txt /tmp/doc.txt")
	require.True(t, res.Success)
	assert.Equal(t, "Moved '/home/sysadmin/documents/important_doc.txt' to '/tmp/doc.txt' (simulated).", res.Message)
	require.Len(t, res.Changes, 1)
	assert.Equal(t, world.KindEntryMove, res.Changes[0].Kind())

	content, ok := st.FileContent("/tmp/doc.txt")
	require.True(t, ok)
	assert.Equal(t, "Sensitive data here.", content)
	_, ok = st.FileContent("/home/sysadmin/documents/important_doc.txt")
	assert.False(t, ok)

	res = shell.Eval(st, "mv /ghost /tmp/x")
	assert.False(t, res.Success)
	assert.Equal(t, "mv: cannot stat '/ghost': No such file or directory", res.Output)

	res = shell.Eval(st, "mv /tmp/doc.txt /no/such/dir/doc.txt")
	assert.False(t, res.Success)
	assert.Equal(t, "mv: cannot move to '/no/such/dir/doc.txt': Not a directory or path does not exist", res.Output)
}

func TestMoveRejectsOwnSubtree(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "mv /home /home/sysadmin/home")
	assert.False(t, res.Success)
	assert.Equal(t, "mv: cannot move '/home' to a subdirectory of itself, '/home/sysadmin/home'", res.Output)

	_, ok := st.Dir("/home/sysadmin")
	assert.True(t, ok, "the tree must be left intact")
}

func TestCopyIsDeep(t *testing.T) {
	st := world.NewState()

	res := shell.Eval(st, "cp /home/sysadmin/documents/important_doc.txt /tmp/copy.txt")
	require.True(t, res.Success)
	assert.Equal(t, "Copied '/home/sysadmin/documents/important_doc.txt' to '/tmp/copy.txt' (simulated).", res.Message)
	require.Len(t, res.Changes, 1)
	assert.Equal(t, world.KindEntryCopy, res.Changes[0].Kind())

	require.True(t, world.FileDeleteChange{Path: "/tmp/copy.txt"}.Apply(st))
	content, ok := st.FileContent("/home/sysadmin/documents/important_doc.txt")
	require.True(t, ok, "deleting the copy must not touch the original")
	assert.Equal(t, "Sensitive data here.", content)

	res = shell.Eval(st, "cp /ghost /tmp/x")
	assert.False(t, res.Success)
	assert.Equal(t, "cp: cannot stat '/ghost': No such file or directory", res.Output)

	res = shell.Eval(st, "cp /etc/passwd /no/such/dir/passwd")
	assert.False(t, res.Success)
	assert.Equal(t, "cp: cannot create '/no/such/dir/passwd': Not a directory or path does not exist", res.Output)
}

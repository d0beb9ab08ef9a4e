package shell_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysdrill/internal/shell"
)

func TestParseTypedCommands(t *testing.T) {
	tests := []struct {
		name string
		line string
		want shell.Command
	}{
		{"LsDefaultsToRoot", "ls", shell.List{Path: "/"}},
		{"LsIgnoresFlags", "ls -la /etc", shell.List{Path: "/"}},
		{"LsWithPath", "ls /var/log", shell.List{Path: "/var/log"}},
		{"Cd", "cd /tmp", shell.ChangeDir{Path: "/tmp"}},
		{"CdBare", "cd", shell.ChangeDir{}},
		{"Cat", "cat /etc/passwd", shell.Cat{Path: "/etc/passwd"}},
		{"Grep", "grep error /var/log/syslog", shell.Grep{Pattern: "error", Path: "/var/log/syslog"}},
		{"Ps", "ps aux", shell.ProcList{}},
		{"Kill", "kill 1234", shell.Kill{PID: 1234}},
		{"KillSignalNine", "kill -9 1234", shell.Kill{PID: 1234}},
		{"DuLastNonFlagWins", "du -sh /var/log", shell.DiskUsage{Path: "/var/log"}},
		{"DuDefaultsToRoot", "du -sh", shell.DiskUsage{Path: "/"}},
		{"RmLastArg", "rm -rf /var/log/syslog", shell.Remove{Path: "/var/log/syslog"}},
		{"Mkdir", "mkdir /tmp/x", shell.MakeDir{Path: "/tmp/x"}},
		{"Find", "find / -name syslog", shell.Find{Root: "/", Name: "syslog"}},
		{"HeadDefault", "head /var/log/syslog", shell.Head{Lines: 10, Path: "/var/log/syslog"}},
		{"HeadJoined", "head -n3 /var/log/syslog", shell.Head{Lines: 3, Path: "/var/log/syslog"}},
		{"HeadSplit", "head -n 3 /var/log/syslog", shell.Head{Lines: 3, Path: "/var/log/syslog"}},
		{"TailNegativeClamped", "tail -n -4 /var/log/syslog", shell.Tail{Lines: 0, Path: "/var/log/syslog"}},
		{"Chmod", "chmod 644 /etc/passwd", shell.Chmod{Mode: "644", Path: "/etc/passwd"}},
		{"Mv", "mv /tmp/a /tmp/b", shell.Move{Src: "/tmp/a", Dst: "/tmp/b"}},
		{"Cp", "cp /tmp/a /tmp/b", shell.Copy{Src: "/tmp/a", Dst: "/tmp/b"}},
		{"Systemctl", "systemctl restart apache2", shell.Systemctl{Action: "restart", Unit: "apache2"}},
		{"SudoStripped", "sudo systemctl restart apache2", shell.Systemctl{Action: "restart", Unit: "apache2"}},
		{"SudoStrippedRepeatedly", "sudo sudo kill 1234", shell.Kill{PID: 1234}},
		{"DockerPs", "docker ps", shell.DockerPS{}},
		{"DockerStart", "docker start web_app_prod", shell.DockerStart{Target: "web_app_prod"}},
		{"DockerStop", "docker stop db_service", shell.DockerStop{Target: "db_service"}},
		{"DockerLogs", "docker logs web_app_prod", shell.DockerLogs{Target: "web_app_prod"}},
		{"KubectlGetPods", "kubectl get pods", shell.KubectlGet{Resource: "pods"}},
		{"KubectlDescribe", "kubectl describe pod backend-efgh-67890", shell.KubectlDescribe{Pod: "backend-efgh-67890"}},
		{"KubectlScale", "kubectl scale deployment backend --replicas=2", shell.KubectlScale{Deployment: "backend", Replicas: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := shell.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantOutput string
	}{
		{"UnknownVerb", "frobnicate /etc", "bash: frobnicate: command not found"},
		{"SudoAlone", "sudo", "sudo: no command specified"},
		{"CatMissingOperand", "cat", "cat: missing operand"},
		{"GrepMissingOperand", "grep error", "grep: missing operand"},
		{"KillUsage", "kill", "kill: usage: kill [-s signal | -p] [-a] pid ..."},
		{"KillNoPidAfterNine", "kill -9", "kill: no pid specified after -9"},
		{"KillNonNumeric", "kill abc", "kill: abc: arguments must be process or job IDs"},
		{"RmMissingOperand", "rm", "rm: missing operand"},
		{"MkdirMissingOperand", "mkdir", "mkdir: missing operand"},
		{"FindUnsupportedSyntax", "find /etc", "find: not enough arguments or unsupported syntax. Try 'find <path> -name <filename>'"},
		{"HeadBadCount", "head -nx /etc/passwd", "head: invalid number of lines: 'x'"},
		{"HeadMissingOperand", "head -n 3", "head: missing operand"},
		{"TailMissingOperand", "tail", "tail: missing operand"},
		{"ChmodMissingOperand", "chmod 644", "chmod: missing operand"},
		{"MvMissingSource", "mv", "mv: missing file operand"},
		{"MvMissingDestination", "mv /tmp/a", "mv: missing destination file operand after '/tmp/a'"},
		{"CpMissingDestination", "cp /tmp/a", "cp: missing destination file operand after '/tmp/a'"},
		{"SystemctlMissingUnit", "systemctl restart", "systemctl: missing verb or unit"},
		{"DockerMissingCommand", "docker", "docker: missing command"},
		{"DockerUnknownSub", "docker exec -it x sh", "docker: 'exec' is not a docker command. See 'docker --help'."},
		{"DockerStartMissingOperand", "docker start", "docker start: missing operand"},
		{"KubectlMissingCommand", "kubectl", "kubectl: missing command"},
		{"KubectlGetUnsupported", "kubectl get nodes", "kubectl get: unsupported resource type: nodes"},
		{"KubectlDescribeUnsupported", "kubectl describe service api", "kubectl describe: unsupported resource type: service"},
		{"KubectlScaleInvalidSyntax", "kubectl scale backend --replicas=2", "kubectl scale: invalid syntax. Use 'kubectl scale deployment <name> --replicas=<count>'"},
		{"KubectlScaleBadCount", "kubectl scale deployment backend --replicas=two", "kubectl scale: invalid replicas count"},
		{"KubectlUnknownSub", "kubectl apply -f x.yaml", "kubectl: 'apply' is not a kubectl command. See 'kubectl --help'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shell.Parse(tt.line)
			var pe *shell.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantOutput, pe.Output)
		})
	}
}

func TestParseEmptyLine(t *testing.T) {
	_, err := shell.Parse("   ")
	assert.True(t, errors.Is(err, shell.ErrEmpty))
}

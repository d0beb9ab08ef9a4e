package shell

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns one raw command line into a typed Command. Leading sudo
// prefixes are stripped before dispatch; the simulation has no privilege
// model, so sudo only changes which raw lines a level may expect. Unknown
// verbs and malformed arguments come back as *ParseError.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmpty
	}
	for strings.ToLower(fields[0]) == "sudo" {
		fields = fields[1:]
		if len(fields) == 0 {
			return nil, &ParseError{
				Output:  "sudo: no command specified",
				Message: "Specify a command after sudo.",
			}
		}
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	parse, ok := parsers[verb]
	if !ok {
		return nil, &ParseError{
			Output:  fmt.Sprintf("bash: %s: command not found", verb),
			Message: fmt.Sprintf("Unknown command: %s", verb),
		}
	}
	return parse(args)
}

type parseFunc func(args []string) (Command, error)

var parsers = map[string]parseFunc{
	"ls":        parseLs,
	"cd":        parseCd,
	"cat":       parseCat,
	"grep":      parseGrep,
	"ps":        parsePs,
	"kill":      parseKill,
	"du":        parseDu,
	"rm":        parseRm,
	"mkdir":     parseMkdir,
	"find":      parseFind,
	"head":      parseHead,
	"tail":      parseTail,
	"chmod":     parseChmod,
	"mv":        parseMv,
	"cp":        parseCp,
	"systemctl": parseSystemctl,
	"docker":    parseDocker,
	"kubectl":   parseKubectl,
}

func parseLs(args []string) (Command, error) {
	path := "/"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		path = args[0]
	}
	return List{Path: path}, nil
}

func parseCd(args []string) (Command, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	return ChangeDir{Path: path}, nil
}

func parseCat(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &ParseError{Output: "cat: missing operand"}
	}
	return Cat{Path: args[0]}, nil
}

func parseGrep(args []string) (Command, error) {
	if len(args) < 2 {
		return nil, &ParseError{Output: "grep: missing operand"}
	}
	return Grep{Pattern: args[0], Path: args[1]}, nil
}

func parsePs(args []string) (Command, error) {
	return ProcList{}, nil
}

func parseKill(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &ParseError{Output: "kill: usage: kill [-s signal | -p] [-a] pid ..."}
	}
	token := args[0]
	for i, a := range args {
		if a != "-9" {
			continue
		}
		if i+1 >= len(args) {
			return nil, &ParseError{Output: "kill: no pid specified after -9"}
		}
		token = args[i+1]
		break
	}
	pid, err := strconv.Atoi(token)
	if err != nil {
		return nil, &ParseError{Output: fmt.Sprintf("kill: %s: arguments must be process or job IDs", token)}
	}
	return Kill{PID: pid}, nil
}

func parseDu(args []string) (Command, error) {
	path := "/"
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			path = a
		}
	}
	return DiskUsage{Path: path}, nil
}

func parseRm(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &ParseError{Output: "rm: missing operand"}
	}
	return Remove{Path: args[len(args)-1]}, nil
}

func parseMkdir(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &ParseError{Output: "mkdir: missing operand"}
	}
	return MakeDir{Path: args[0]}, nil
}

func parseFind(args []string) (Command, error) {
	if len(args) < 3 || args[1] != "-name" {
		return nil, &ParseError{Output: "find: not enough arguments or unsupported syntax. Try 'find <path> -name <filename>'"}
	}
	return Find{Root: args[0], Name: args[2]}, nil
}

func parseHead(args []string) (Command, error) {
	n, path, err := parseLineWindow("head", args)
	if err != nil {
		return nil, err
	}
	return Head{Lines: n, Path: path}, nil
}

func parseTail(args []string) (Command, error) {
	n, path, err := parseLineWindow("tail", args)
	if err != nil {
		return nil, err
	}
	return Tail{Lines: n, Path: path}, nil
}

// parseLineWindow handles the shared head/tail argument shape: an optional
// -nN or -n N count followed by a file path.
func parseLineWindow(verb string, args []string) (int, string, error) {
	n := 10
	rest := args
	if len(args) > 0 && strings.HasPrefix(args[0], "-n") {
		var numStr string
		switch {
		case args[0] == "-n" && len(args) > 1:
			numStr = args[1]
			rest = args[2:]
		case args[0] != "-n":
			numStr = args[0][2:]
			rest = args[1:]
		default:
			return 0, "", &ParseError{Output: fmt.Sprintf("%s: missing operand", verb)}
		}
		parsed, err := strconv.Atoi(numStr)
		if err != nil {
			return 0, "", &ParseError{Output: fmt.Sprintf("%s: invalid number of lines: '%s'", verb, numStr)}
		}
		n = parsed
	}
	if len(rest) == 0 {
		return 0, "", &ParseError{Output: fmt.Sprintf("%s: missing operand", verb)}
	}
	if n < 0 {
		n = 0
	}
	return n, rest[0], nil
}

func parseChmod(args []string) (Command, error) {
	if len(args) < 2 {
		return nil, &ParseError{Output: "chmod: missing operand"}
	}
	return Chmod{Mode: args[0], Path: args[1]}, nil
}

func parseMv(args []string) (Command, error) {
	if len(args) < 1 {
		return nil, &ParseError{Output: "mv: missing file operand"}
	}
	if len(args) < 2 {
		return nil, &ParseError{Output: fmt.Sprintf("mv: missing destination file operand after '%s'", args[0])}
	}
	return Move{Src: args[0], Dst: args[1]}, nil
}

func parseCp(args []string) (Command, error) {
	if len(args) < 1 {
		return nil, &ParseError{Output: "cp: missing file operand"}
	}
	if len(args) < 2 {
		return nil, &ParseError{Output: fmt.Sprintf("cp: missing destination file operand after '%s'", args[0])}
	}
	return Copy{Src: args[0], Dst: args[1]}, nil
}

func parseSystemctl(args []string) (Command, error) {
	if len(args) < 2 {
		return nil, &ParseError{Output: "systemctl: missing verb or unit"}
	}
	return Systemctl{Action: strings.ToLower(args[0]), Unit: strings.ToLower(args[1])}, nil
}

func parseDocker(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &ParseError{Output: "docker: missing command"}
	}
	sub := strings.ToLower(args[0])
	switch sub {
	case "ps":
		return DockerPS{}, nil
	case "start", "stop", "logs":
		if len(args) < 2 {
			return nil, &ParseError{Output: fmt.Sprintf("docker %s: missing operand", sub)}
		}
		switch sub {
		case "start":
			return DockerStart{Target: args[1]}, nil
		case "stop":
			return DockerStop{Target: args[1]}, nil
		default:
			return DockerLogs{Target: args[1]}, nil
		}
	default:
		return nil, &ParseError{Output: fmt.Sprintf("docker: '%s' is not a docker command. See 'docker --help'.", sub)}
	}
}

func parseKubectl(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &ParseError{Output: "kubectl: missing command"}
	}
	sub := strings.ToLower(args[0])
	switch sub {
	case "get":
		if len(args) < 2 {
			return nil, &ParseError{Output: "kubectl get: missing resource type"}
		}
		resource := strings.ToLower(args[1])
		if resource != "pods" && resource != "deployments" {
			return nil, &ParseError{Output: fmt.Sprintf("kubectl get: unsupported resource type: %s", resource)}
		}
		return KubectlGet{Resource: resource}, nil
	case "describe":
		if len(args) < 3 {
			return nil, &ParseError{Output: "kubectl describe: missing resource type or name"}
		}
		if strings.ToLower(args[1]) != "pod" {
			return nil, &ParseError{Output: fmt.Sprintf("kubectl describe: unsupported resource type: %s", args[1])}
		}
		return KubectlDescribe{Pod: args[2]}, nil
	case "scale":
		if len(args) < 4 || args[1] != "deployment" || !strings.Contains(args[3], "--replicas=") {
			return nil, &ParseError{Output: "kubectl scale: invalid syntax. Use 'kubectl scale deployment <name> --replicas=<count>'"}
		}
		countStr := args[3][strings.Index(args[3], "=")+1:]
		replicas, err := strconv.Atoi(countStr)
		if err != nil {
			return nil, &ParseError{Output: "kubectl scale: invalid replicas count"}
		}
		return KubectlScale{Deployment: args[2], Replicas: replicas}, nil
	default:
		return nil, &ParseError{Output: fmt.Sprintf("kubectl: '%s' is not a kubectl command. See 'kubectl --help'.", sub)}
	}
}

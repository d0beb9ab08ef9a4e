package shell

import (
	"fmt"
	"path"
	"strings"

	"sysdrill/pkg/world"
)

// List prints directory contents, directories marked with a trailing
// slash. Listing a file echoes the path, like ls does.
type List struct {
	Path string
}

func (List) Verb() string { return "ls" }

func (c List) Simulate(st *world.State) Result {
	e, ok := st.Resolve(c.Path)
	if !ok {
		return failure(fmt.Sprintf("ls: cannot access '%s': No such file or directory", c.Path), "")
	}
	dir, ok := e.(*world.Dir)
	if !ok {
		return success(c.Path)
	}
	lines := make([]string, 0, dir.Len())
	for _, name := range dir.Names() {
		child, _ := dir.Lookup(name)
		if _, isDir := child.(*world.Dir); isDir {
			name += "/"
		}
		lines = append(lines, name)
	}
	return success(strings.Join(lines, "\n"))
}

// ChangeDir validates a directory path. The simulation has no working
// directory, so the command only confirms the target exists.
type ChangeDir struct {
	Path string
}

func (ChangeDir) Verb() string { return "cd" }

func (c ChangeDir) Simulate(st *world.State) Result {
	if c.Path == "" {
		return Result{Success: true, Message: "Changed to home directory (simulated)."}
	}
	e, ok := st.Resolve(c.Path)
	if !ok {
		return failure(fmt.Sprintf("cd: %s: No such file or directory", c.Path), "")
	}
	if _, isDir := e.(*world.Dir); !isDir {
		return failure(fmt.Sprintf("cd: %s: Not a directory", c.Path), "")
	}
	return Result{Success: true, Message: fmt.Sprintf("Changed directory to %s (simulated).", c.Path)}
}

// Cat prints a file's content.
type Cat struct {
	Path string
}

func (Cat) Verb() string { return "cat" }

func (c Cat) Simulate(st *world.State) Result {
	content, ok := st.FileContent(c.Path)
	if !ok {
		return failure(fmt.Sprintf("cat: %s: No such file or directory", c.Path), "")
	}
	return success(content)
}

// Grep prints the lines of a file containing a literal pattern.
type Grep struct {
	Pattern string
	Path    string
}

func (Grep) Verb() string { return "grep" }

func (c Grep) Simulate(st *world.State) Result {
	content, ok := st.FileContent(c.Path)
	if !ok {
		return failure(fmt.Sprintf("grep: %s: No such file or directory", c.Path), "")
	}
	var matched []string
	for _, line := range splitLines(content) {
		if strings.Contains(line, c.Pattern) {
			matched = append(matched, line)
		}
	}
	return success(strings.Join(matched, "\n"))
}

// DiskUsage reports scripted sizes. The interesting numbers belong to the
// disk-space scenario and depend on whether /var/log/syslog still exists;
// everything else reports a flat 4.0K.
type DiskUsage struct {
	Path string
}

func (DiskUsage) Verb() string { return "du" }

func (c DiskUsage) Simulate(st *world.State) Result {
	_, syslogPresent := st.FileContent("/var/log/syslog")
	switch c.Path {
	case "/var/log":
		if syslogPresent {
			return success("1.5G    /var/log")
		}
		return success("12K    /var/log")
	case "/var/log/*":
		if syslogPresent {
			return success("1.4G    /var/log/syslog\n8.0K    /var/log/auth.log\n4.0K    /var/log/kern.log")
		}
		return success("8.0K    /var/log/auth.log\n4.0K    /var/log/kern.log")
	}
	return success(fmt.Sprintf("4.0K    %s", c.Path))
}

// Remove deletes a file or directory.
type Remove struct {
	Path string
}

func (Remove) Verb() string { return "rm" }

func (c Remove) Simulate(st *world.State) Result {
	ch := world.FileDeleteChange{Path: c.Path}
	if !ch.Apply(st) {
		return failure(
			fmt.Sprintf("rm: cannot remove '%s': No such file or directory", c.Path),
			"Failed to remove file/directory.",
		)
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Successfully removed %s.", c.Path),
		Changes: []world.Change{ch},
	}
}

// MakeDir creates a directory under an existing parent.
type MakeDir struct {
	Path string
}

func (MakeDir) Verb() string { return "mkdir" }

func (c MakeDir) Simulate(st *world.State) Result {
	parts := world.SplitPath(c.Path)
	if len(parts) == 0 {
		return failure("mkdir: cannot create directory '/': File exists", "")
	}
	ch := world.DirCreateChange{
		Path: "/" + strings.Join(parts[:len(parts)-1], "/"),
		Name: parts[len(parts)-1],
	}
	if !ch.Apply(st) {
		return failure(
			fmt.Sprintf("mkdir: cannot create directory '%s': File exists or parent path not found", c.Path),
			"",
		)
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Directory '%s' created.", c.Path),
		Changes: []world.Change{ch},
	}
}

// Find lists entries below a root whose name contains the given token,
// case-insensitively, printed as absolute paths.
type Find struct {
	Root string
	Name string
}

func (Find) Verb() string { return "find" }

func (c Find) Simulate(st *world.State) Result {
	dir, ok := st.Dir(c.Root)
	if !ok {
		return failure(fmt.Sprintf("find: '%s': No such file or directory", c.Root), "")
	}
	base := ""
	if parts := world.SplitPath(c.Root); len(parts) > 0 {
		base = "/" + strings.Join(parts, "/")
	}
	needle := strings.ToLower(c.Name)
	var found []string
	dir.Walk(base, func(p string, _ world.Entry) {
		if strings.Contains(strings.ToLower(path.Base(p)), needle) {
			found = append(found, p)
		}
	})
	if len(found) == 0 {
		return Result{Success: true, Message: "No matching files found."}
	}
	return success(strings.Join(found, "\n"))
}

// Head prints the first Lines lines of a file.
type Head struct {
	Lines int
	Path  string
}

func (Head) Verb() string { return "head" }

func (c Head) Simulate(st *world.State) Result {
	content, ok := st.FileContent(c.Path)
	if !ok {
		return failure(fmt.Sprintf("head: %s: No such file or directory", c.Path), "")
	}
	lines := splitLines(content)
	n := c.Lines
	if n > len(lines) {
		n = len(lines)
	}
	return success(strings.Join(lines[:n], "\n"))
}

// Tail prints the last Lines lines of a file.
type Tail struct {
	Lines int
	Path  string
}

func (Tail) Verb() string { return "tail" }

func (c Tail) Simulate(st *world.State) Result {
	content, ok := st.FileContent(c.Path)
	if !ok {
		return failure(fmt.Sprintf("tail: %s: No such file or directory", c.Path), "")
	}
	lines := splitLines(content)
	n := c.Lines
	if n > len(lines) {
		n = len(lines)
	}
	return success(strings.Join(lines[len(lines)-n:], "\n"))
}

// Chmod acknowledges a mode change. Permissions are not modeled, so the
// command only validates the target path.
type Chmod struct {
	Mode string
	Path string
}

func (Chmod) Verb() string { return "chmod" }

func (c Chmod) Simulate(st *world.State) Result {
	if _, ok := st.Resolve(c.Path); !ok {
		return failure(fmt.Sprintf("chmod: cannot access '%s': No such file or directory", c.Path), "")
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Permissions of '%s' changed to '%s' (simulated).", c.Path, c.Mode),
	}
}

// Move relocates an entry, keeping the same node.
type Move struct {
	Src string
	Dst string
}

func (Move) Verb() string { return "mv" }

func (c Move) Simulate(st *world.State) Result {
	srcParts := world.SplitPath(c.Src)
	if len(srcParts) == 0 {
		return failure(fmt.Sprintf("mv: cannot stat '%s': No such file or directory", c.Src), "")
	}
	srcParent, ok := st.Dir("/" + strings.Join(srcParts[:len(srcParts)-1], "/"))
	if !ok {
		return failure(fmt.Sprintf("mv: cannot stat '%s': No such file or directory", c.Src), "")
	}
	srcName := srcParts[len(srcParts)-1]
	entry, ok := srcParent.Lookup(srcName)
	if !ok {
		return failure(fmt.Sprintf("mv: cannot stat '%s': No such file or directory", c.Src), "")
	}

	dstParts := world.SplitPath(c.Dst)
	if len(dstParts) == 0 {
		return failure(fmt.Sprintf("mv: cannot move to '%s': Not a directory or path does not exist", c.Dst), "")
	}
	dstParent, ok := st.Dir("/" + strings.Join(dstParts[:len(dstParts)-1], "/"))
	if !ok {
		return failure(fmt.Sprintf("mv: cannot move to '%s': Not a directory or path does not exist", c.Dst), "")
	}
	if srcDir, isDir := entry.(*world.Dir); isDir && srcDir.Contains(dstParent) {
		return failure(fmt.Sprintf("mv: cannot move '%s' to a subdirectory of itself, '%s'", c.Src, c.Dst), "")
	}

	res := Result{
		Success: true,
		Message: fmt.Sprintf("Moved '%s' to '%s' (simulated).", c.Src, c.Dst),
	}
	ch := world.EntryMoveChange{Src: c.Src, Dst: c.Dst}
	if ch.Apply(st) {
		res.Changes = []world.Change{ch}
	}
	return res
}

// Copy duplicates an entry. The copy is deep, so the two subtrees evolve
// independently.
type Copy struct {
	Src string
	Dst string
}

func (Copy) Verb() string { return "cp" }

func (c Copy) Simulate(st *world.State) Result {
	entry, ok := st.Resolve(c.Src)
	if !ok {
		return failure(fmt.Sprintf("cp: cannot stat '%s': No such file or directory", c.Src), "")
	}
	dstParts := world.SplitPath(c.Dst)
	if len(dstParts) == 0 {
		return failure(fmt.Sprintf("cp: cannot create '%s': Not a directory or path does not exist", c.Dst), "")
	}
	dstParent, ok := st.Dir("/" + strings.Join(dstParts[:len(dstParts)-1], "/"))
	if !ok {
		return failure(fmt.Sprintf("cp: cannot create '%s': Not a directory or path does not exist", c.Dst), "")
	}
	dstParent.Put(dstParts[len(dstParts)-1], world.CloneEntry(entry))
	return Result{
		Success: true,
		Message: fmt.Sprintf("Copied '%s' to '%s' (simulated).", c.Src, c.Dst),
		Changes: []world.Change{world.EntryCopyChange{Src: c.Src, Dst: c.Dst}},
	}
}

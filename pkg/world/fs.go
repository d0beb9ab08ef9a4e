package world

import (
	"sort"
	"strings"
)

// Entry is a node in the simulated filesystem: either a *Dir or a *File.
// Every entry is owned by exactly one parent directory, so removing a
// directory drops its whole subtree.
type Entry interface {
	entry()
}

// Dir is a directory entry holding named children.
type Dir struct {
	children map[string]Entry
}

// File is a leaf entry holding text content.
type File struct {
	Content string `json:"content"`
}

func (*Dir) entry()  {}
func (*File) entry() {}

// NewDir returns an empty directory.
func NewDir() *Dir {
	return &Dir{children: make(map[string]Entry)}
}

// NewFile returns a file with the given content.
func NewFile(content string) *File {
	return &File{Content: content}
}

// Lookup returns the child with the given name.
func (d *Dir) Lookup(name string) (Entry, bool) {
	e, ok := d.children[name]
	return e, ok
}

// Put inserts or replaces the child with the given name.
func (d *Dir) Put(name string, e Entry) {
	if d.children == nil {
		d.children = make(map[string]Entry)
	}
	d.children[name] = e
}

// Remove deletes the child with the given name, reporting whether it existed.
func (d *Dir) Remove(name string) bool {
	if _, ok := d.children[name]; !ok {
		return false
	}
	delete(d.children, name)
	return true
}

// Len returns the number of direct children.
func (d *Dir) Len() int {
	return len(d.children)
}

// Names returns the child names in sorted order, so listings and walks
// stay deterministic.
func (d *Dir) Names() []string {
	names := make([]string, 0, len(d.children))
	for name := range d.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Walk visits every entry below d in depth-first order, children sorted
// by name. base is the absolute path of d, "" for the root.
func (d *Dir) Walk(base string, fn func(path string, e Entry)) {
	for _, name := range d.Names() {
		child := d.children[name]
		full := base + "/" + name
		fn(full, child)
		if sub, ok := child.(*Dir); ok {
			sub.Walk(full, fn)
		}
	}
}

// Contains reports whether target is d itself or a directory anywhere in
// d's subtree.
func (d *Dir) Contains(target *Dir) bool {
	if d == target {
		return true
	}
	for _, child := range d.children {
		if sub, ok := child.(*Dir); ok && sub.Contains(target) {
			return true
		}
	}
	return false
}

// CloneEntry returns a deep copy of e. Mutating the copy never reaches
// the original subtree.
func CloneEntry(e Entry) Entry {
	switch v := e.(type) {
	case *File:
		return &File{Content: v.Content}
	case *Dir:
		c := NewDir()
		for name, child := range v.children {
			c.children[name] = CloneEntry(child)
		}
		return c
	default:
		return nil
	}
}

// SplitPath breaks a slash-separated path into segments, dropping the
// empties produced by leading, trailing, or doubled slashes. "/" and ""
// both yield no segments.
func SplitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

package sysdrill

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version is the sysdrill module version.
var Version = strings.TrimSpace(rawVersion)

package level

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"sysdrill/pkg/world"
)

//go:embed levels.yaml
var defaultYAML []byte

// Default returns the built-in campaign. The embedded catalog ships with
// the binary and is covered by tests, so a decode failure here is a
// programming error and panics.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("level: embedded catalog invalid: %v", err))
	}
	return c
}

// DefaultYAML returns a copy of the embedded catalog source, for export.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Load reads and validates a catalog from YAML.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML into a validated Catalog.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	c := &Catalog{Levels: make([]Level, 0, len(raw.Levels))}
	for _, rl := range raw.Levels {
		lvl := Level{
			ID:          rl.ID,
			Title:       rl.Title,
			Description: rl.Description,
			Steps:       make([]Step, 0, len(rl.Steps)),
		}
		for si, rs := range rl.Steps {
			step := Step{
				Task: rs.Task,
				Hint: rs.Hint,
				Success: Outcome{
					Message:         rs.Success.Message,
					XP:              rs.Success.XP,
					OutputOverrides: rs.Success.OutputOverrides,
				},
			}
			for _, re := range rs.Expect {
				step.Expect = append(step.Expect, Expectation{
					Command:        re.Command,
					Match:          MatchKind(re.Match),
					OutputContains: re.OutputContains,
					Feedback:       re.Feedback,
				})
			}
			for ci, rc := range rs.Success.Changes {
				ch, err := decodeChange(rc)
				if err != nil {
					return nil, fmt.Errorf("level %q step %d change %d: %w", rl.ID, si+1, ci+1, err)
				}
				step.Success.Changes = append(step.Success.Changes, ch)
			}
			lvl.Steps = append(lvl.Steps, step)
		}
		c.Levels = append(c.Levels, lvl)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

type rawCatalog struct {
	Levels []rawLevel `yaml:"levels"`
}

type rawLevel struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Steps       []rawStep `yaml:"steps"`
}

type rawStep struct {
	Task    string           `yaml:"task"`
	Expect  []rawExpectation `yaml:"expect"`
	Success rawOutcome       `yaml:"success"`
	Hint    string           `yaml:"hint"`
}

type rawExpectation struct {
	Command        string `yaml:"command"`
	Match          string `yaml:"match"`
	OutputContains string `yaml:"output_contains"`
	Feedback       string `yaml:"feedback"`
}

type rawOutcome struct {
	Message         string            `yaml:"message"`
	XP              int               `yaml:"xp"`
	Changes         []map[string]any  `yaml:"changes"`
	OutputOverrides map[string]string `yaml:"output_overrides"`
}

// decodeChange maps one change descriptor onto its typed world.Change by
// the "type" discriminator.
func decodeChange(raw map[string]any) (world.Change, error) {
	kind, _ := raw["type"].(string)
	var (
		ch  world.Change
		err error
	)
	switch kind {
	case world.KindProcessState:
		var c world.ProcessStateChange
		err = mapstructure.Decode(raw, &c)
		ch = c
	case world.KindContainerStatus:
		var c world.ContainerStatusChange
		err = mapstructure.Decode(raw, &c)
		ch = c
	case world.KindPodStatus:
		var c world.PodStatusChange
		err = mapstructure.Decode(raw, &c)
		ch = c
	case world.KindDeploymentScale:
		var c world.DeploymentScaleChange
		err = mapstructure.Decode(raw, &c)
		ch = c
	case world.KindDirCreate:
		var c world.DirCreateChange
		err = mapstructure.Decode(raw, &c)
		ch = c
	case world.KindFileDelete:
		var c world.FileDeleteChange
		err = mapstructure.Decode(raw, &c)
		ch = c
	case world.KindEntryMove:
		var c world.EntryMoveChange
		err = mapstructure.Decode(raw, &c)
		ch = c
	case world.KindEntryCopy:
		var c world.EntryCopyChange
		err = mapstructure.Decode(raw, &c)
		ch = c
	case "":
		return nil, fmt.Errorf("state change missing type")
	default:
		return nil, fmt.Errorf("unknown state change type %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s change: %w", kind, err)
	}
	return ch, nil
}

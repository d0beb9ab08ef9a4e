// Package console renders the game to a terminal and reads player
// commands. All output goes through a Console so the play loop never
// touches Stdout directly, which keeps sessions scriptable in tests.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// promptText mimics the shell the player is pretending to use.
const promptText = "sysadmin@server:~$ "

// Console handles terminal IO for a game session.
type Console struct {
	source io.Reader
	reader *bufio.Reader
	out    io.Writer
	styles Styles
	plain  bool
	delay  time.Duration
	render func(string) (string, error)
}

// Option configures a Console.
type Option func(*Console)

// WithInput sets the reader commands come from. Defaults to Stdin.
func WithInput(r io.Reader) Option {
	return func(c *Console) {
		if r != nil {
			c.source = r
		}
	}
}

// WithOutput sets the writer game output goes to. Defaults to Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		if w != nil {
			c.out = w
		}
	}
}

// WithNoColor disables styling, markdown rendering and the typing
// effect regardless of terminal detection.
func WithNoColor(noColor bool) Option {
	return func(c *Console) {
		if noColor {
			c.plain = true
		}
	}
}

// WithTypingDelay sets the per-rune delay of the typing effect. Zero
// disables it. The delay is ignored on plain consoles.
func WithTypingDelay(d time.Duration) Option {
	return func(c *Console) {
		c.delay = d
	}
}

// New builds a Console. Output to anything that is not a terminal
// (pipes, files, test buffers) automatically downgrades to plain mode
// so transcripts stay free of escape codes.
func New(opts ...Option) *Console {
	c := &Console{
		source: os.Stdin,
		out:    os.Stdout,
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !isTerminal(c.out) {
		c.plain = true
	}
	if c.plain {
		c.styles = PlainStyles()
		c.delay = 0
	} else {
		c.render = newMarkdownRenderer(80)
	}
	c.reader = bufio.NewReader(c.source)
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ReadCommand shows the shell prompt and returns the next sanitized
// line. Oversized or malformed input is reported and re-prompted, so
// callers only ever see clean commands.
func (c *Console) ReadCommand() (string, error) {
	for {
		fmt.Fprint(c.out, c.styles.Prompt.Render(promptText))
		line, err := c.reader.ReadString('\n')
		if line == "" && err != nil {
			return "", err
		}
		clean, serr := Sanitize(strings.TrimSpace(line))
		if serr != nil {
			fmt.Fprintf(c.out, "Error: %v. Please try again.\n", serr)
			if err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

// WaitEnter prints msg and blocks until the player presses Enter.
func (c *Console) WaitEnter(msg string) error {
	c.say(c.styles.Muted, msg)
	_, err := c.reader.ReadString('\n')
	return err
}

// Briefing clears the screen and presents a level header with its
// scenario description in a bordered panel.
func (c *Console) Briefing(number int, title, description string) {
	c.Clear()
	header := fmt.Sprintf("Level %d: %s", number, title)
	if c.plain {
		c.Panel(header, description)
	} else {
		c.Panel(header, c.Markdown(description))
	}
	fmt.Fprintln(c.out)
}

// Panel frames body in a rounded border under a bold title line. Plain
// consoles print title and body without the frame.
func (c *Console) Panel(title, body string) {
	if c.plain {
		if title != "" {
			fmt.Fprintf(c.out, "%s\n\n", title)
		}
		fmt.Fprintln(c.out, body)
		return
	}
	content := body
	if title != "" {
		content = c.styles.PanelTitle.Render(title) + "\n\n" + body
	}
	fmt.Fprintln(c.out, c.styles.Panel.Render(content))
}

// Task presents the current objective.
func (c *Console) Task(text string) {
	c.say(c.styles.Info, text)
}

// ShowOutput echoes the simulated output of the last command.
func (c *Console) ShowOutput(output string) {
	if output == "" {
		return
	}
	fmt.Fprintln(c.out, c.styles.Info.Render("Simulated output:"))
	fmt.Fprintln(c.out, c.styles.Muted.Render(output))
}

// Success prints a SUCCESS line.
func (c *Console) Success(msg string) {
	c.say(c.styles.Success, "SUCCESS: "+msg)
}

// Error prints an ERROR line.
func (c *Console) Error(msg string) {
	c.say(c.styles.Error, "ERROR: "+msg)
}

// Info prints an informational line.
func (c *Console) Info(msg string) {
	c.say(c.styles.Info, msg)
}

// Highlight prints an emphasized status line, used for XP totals.
func (c *Console) Highlight(msg string) {
	c.say(c.styles.XP, msg)
}

// Muted prints a low-emphasis line.
func (c *Console) Muted(msg string) {
	c.say(c.styles.Muted, msg)
}

// Rule prints a labeled divider between game phases.
func (c *Console) Rule(label string) {
	bar := strings.Repeat("-", 20)
	fmt.Fprintf(c.out, "%s\n", c.styles.Muted.Render(bar+" "+label+" "+bar))
}

// Clear wipes the screen. Skipped on plain consoles so transcripts
// stay intact.
func (c *Console) Clear() {
	if c.plain {
		return
	}
	fmt.Fprint(c.out, "\033[2J\033[H")
}

// say writes one styled line, rune by rune when a typing delay is
// configured.
func (c *Console) say(style lipgloss.Style, text string) {
	if c.delay <= 0 {
		fmt.Fprintln(c.out, style.Render(text))
		return
	}
	for _, r := range text {
		fmt.Fprint(c.out, style.Render(string(r)))
		time.Sleep(c.delay)
	}
	fmt.Fprintln(c.out)
}

package output

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/strata/internal/ui/style"
)

// Highlighter is an io.Writer that colors the line-oriented dump format.
// Prim headers, section headers and notices are styled; field lines pass
// through unchanged. Partial lines are held until their newline arrives or
// Flush is called.
type Highlighter struct {
	out     *termenv.Output
	pending []byte
}

// NewHighlighter creates a Highlighter writing to out.
func NewHighlighter(out *termenv.Output) *Highlighter {
	return &Highlighter{out: out}
}

// Write implements io.Writer.
func (h *Highlighter) Write(p []byte) (int, error) {
	h.pending = append(h.pending, p...)
	for {
		i := bytes.IndexByte(h.pending, '\n')
		if i < 0 {
			return len(p), nil
		}
		line := string(h.pending[:i])
		h.pending = h.pending[i+1:]
		if _, err := h.out.WriteString(h.styleLine(line) + "\n"); err != nil {
			return 0, err
		}
	}
}

// Flush writes a trailing partial line.
func (h *Highlighter) Flush() error {
	if len(h.pending) == 0 {
		return nil
	}
	line := string(h.pending)
	h.pending = nil
	_, err := h.out.WriteString(h.styleLine(line))
	return err
}

func (h *Highlighter) styleLine(line string) string {
	switch {
	case strings.HasPrefix(line, "# "):
		return h.out.String(line).Foreground(h.out.Color(string(style.Slate))).Faint().String()
	case strings.HasPrefix(line, "#"):
		return h.styleNotice(line)
	case strings.HasPrefix(line, "/"):
		return h.out.String(line).Foreground(h.out.Color(string(style.Iris))).Bold().String()
	default:
		return line
	}
}

func (h *Highlighter) styleNotice(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return line
	}

	var icon string
	var color lipgloss.Color
	switch fields[1] {
	case "added":
		icon, color = style.Check, style.Green
	case "removed":
		icon, color = style.Circle, style.Red
	case "dirtied":
		icon, color = style.Dot, style.Yellow
	default:
		return line
	}
	return h.out.String(icon + " " + line).Foreground(h.out.Color(string(color))).String()
}

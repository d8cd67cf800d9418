// Package logger provides structured logging with a colored console format and a JSON format.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// FormatJSON writes one JSON object per record.
	FormatJSON = "json"
	// FormatPretty writes colored single-line records for terminals.
	FormatPretty = "pretty"
)

// Logger wraps slog.Logger.
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration.
type Config struct {
	Writer io.Writer
	Format string
	Level  slog.Level
}

// New creates a new logger with the given configuration. Output defaults to
// stderr so it never mixes with command output on stdout.
func New(cfg Config) *Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(cfg.Writer, opts)
	} else {
		handler = NewPrettyHandler(cfg.Writer, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// ParseLevel converts a string to slog.Level. Unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// PrettyHandler formats records as "15:04:05 LVL message key=value ...".
type PrettyHandler struct {
	opts   *slog.HandlerOptions
	writer io.Writer
	attrs  []slog.Attr
	styles prettyStyles
}

type prettyStyles struct {
	time, message, attrs lipgloss.Style
	levels               map[slog.Level]lipgloss.Style
}

// NewPrettyHandler creates a new pretty handler. Colors are dropped when w is
// not a terminal.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	r := lipgloss.NewRenderer(w)
	return &PrettyHandler{
		opts:   opts,
		writer: w,
		styles: prettyStyles{
			time:    r.NewStyle().Faint(true),
			message: r.NewStyle().Bold(true),
			attrs:   r.NewStyle().Foreground(lipgloss.Color("6")),
			levels: map[slog.Level]lipgloss.Style{
				slog.LevelDebug: r.NewStyle().Foreground(lipgloss.Color("5")),
				slog.LevelInfo:  r.NewStyle().Foreground(lipgloss.Color("2")),
				slog.LevelWarn:  r.NewStyle().Foreground(lipgloss.Color("3")),
				slog.LevelError: r.NewStyle().Foreground(lipgloss.Color("1")),
			},
		},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle formats and writes the log record.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.styles.time.Render(r.Time.Format("15:04:05")))
	b.WriteByte(' ')
	b.WriteString(h.levelStyle(r.Level).Render(levelName(r.Level)))
	b.WriteByte(' ')
	b.WriteString(h.styles.message.Render(r.Message))

	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs = append(attrs, a.Key+"="+a.Value.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a.Key+"="+a.Value.String())
		return true
	})
	if len(attrs) > 0 {
		b.WriteByte(' ')
		b.WriteString(h.styles.attrs.Render(strings.Join(attrs, " ")))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(h.writer, b.String())
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &PrettyHandler{opts: h.opts, writer: h.writer, attrs: newAttrs, styles: h.styles}
}

// WithGroup is a no-op: the console format has no nesting.
func (h *PrettyHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *PrettyHandler) levelStyle(level slog.Level) lipgloss.Style {
	if s, ok := h.styles.levels[level]; ok {
		return s
	}
	return h.styles.time
}

func levelName(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DBG"
	case slog.LevelInfo:
		return "INF"
	case slog.LevelWarn:
		return "WRN"
	case slog.LevelError:
		return "ERR"
	default:
		return level.String()
	}
}

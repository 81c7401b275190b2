package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Logger = *slog.Logger

// Logger writes to the terminal Writer, or to the systemd journal when running as a service.
// CSL_LOG_FORMAT=json switches the terminal output to JSON.
func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler
	if runningAsService() {
		journal, err := newJournalHandler()
		if err == nil {
			handlers = append(handlers, journal)
		} else {
			terminal := newTerminalHandler(writer)
			handlers = append(handlers, terminal)
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "journal unavailable", 0)
			record.AddAttrs(slog.Any("error", err))
			_ = terminal.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, newTerminalHandler(writer))
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	}).With("app", "csl")
}

func newTerminalHandler(writer Writer) slog.Handler {
	options := &slog.HandlerOptions{
		Level: level,
	}
	if strings.EqualFold(os.Getenv("CSL_LOG_FORMAT"), "json") {
		return slog.NewJSONHandler(writer, options)
	}
	return slog.NewTextHandler(writer, options)
}

func newJournalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		Level:        level,
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

// toJournalKey maps a key to the journal field alphabet: upper case letters, digits and underscores.
func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, str)
}

func runningAsService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	for line := range strings.SplitSeq(strings.TrimSpace(string(content)), "\n") {
		parts := strings.SplitN(line, ":", 3)
		if len(parts) == 3 && strings.HasSuffix(path.Dir(parts[2]), ".service") {
			return true
		}
	}
	return false
}

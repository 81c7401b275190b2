package logs

import (
	"log/slog"
	"os"
	"strings"

	"github.com/reusee/csl/cmds"
)

var level = new(slog.LevelVar)

func init() {
	if l, ok := parseLevel(os.Getenv("CSL_LOG_LEVEL")); ok {
		level.Set(l)
	}

	cmds.Define("-log-level", cmds.Func(func(l slog.Level) {
		level.Set(l)
	}).Desc("set log level: debug, info, warn or error"))
	for _, l := range []slog.Level{
		slog.LevelDebug,
		slog.LevelInfo,
		slog.LevelWarn,
		slog.LevelError,
	} {
		cmds.Define("-log-"+strings.ToLower(l.String()), cmds.Func(func() {
			level.Set(l)
		}).Hide())
	}
}

func parseLevel(name string) (slog.Level, bool) {
	var l slog.Level
	if name == "" {
		return l, false
	}
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return l, false
	}
	return l, true
}

package lifecanvas

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

var (
	silent = slog.New(slog.DiscardHandler)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(silent)
}

// SetLogger installs l for lifecanvas, its sub-packages and the gg
// canvas library it draws with. Nothing is logged until SetLogger is
// called; nil restores that.
//
// Levels:
//   - Debug: per-frame diagnostics (diff sizes, step counts)
//   - Info: resize applied, theme changed, play and pause
//   - Warn: recoverable host problems (canvas resize or fill failures)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
	gg.SetLogger(l)
}

// Logger returns the installed logger.
func Logger() *slog.Logger {
	return logger.Load()
}

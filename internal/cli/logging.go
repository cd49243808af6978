package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger sends diagnostics to path, since the terminal belongs to the
// TUI. An empty path discards them.
func setupLogger(path string, level log.Level) (*log.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	log.SetDefault(logger)
	return logger, closeFn, nil
}

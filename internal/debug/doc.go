// Package debug provides optional file-based debug logging.
//
// When the TUI_DEBUG environment variable is set to a file path, log
// records are appended to that file as slog text records. Otherwise, logging
// is a no-op. Loggers handed out by Logger keep working across Init and Close:
// they resolve the current sink on every record.
package debug

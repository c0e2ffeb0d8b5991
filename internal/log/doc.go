// Package log builds [log/slog] handlers from CLI flags.
//
// Three formats are supported: [FormatJSON] and [FormatLogfmt] use the
// standard library handlers, [FormatText] uses charm.land/log for colored
// terminal output. Levels are [LevelError], [LevelWarn], [LevelInfo] and
// [LevelDebug].
//
// Typical usage:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	logger := slog.New(handler)
package log

// Package logger constructs log/slog loggers with a small functional-option
// surface: output format (text or JSON), minimum level, destination writer
// and static attributes attached to every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("component", "authclient")),
//	)
//
// Components in this module default to logger.Discard() and accept an
// injected logger through their own WithLogger options.
package logger

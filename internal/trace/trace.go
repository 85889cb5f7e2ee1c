package trace

import (
	"context"
	"log/slog"
)

// Debug logs a message at Debug level if the logger is non-nil and enabled.
//
// Use for simple, pre-computed attributes only. For computed attributes
// (function calls, slice ops), use [DebugLazy].
func Debug(ctx context.Context, logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// DebugLazy logs at Debug level with lazily-computed attributes.
//
// fn is not called when logging is disabled, guaranteeing no allocation
// from attribute construction on the hot path.
func DebugLazy(ctx context.Context, logger *slog.Logger, msg string, fn func() []slog.Attr) {
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.LogAttrs(ctx, slog.LevelDebug, msg, fn()...)
}

// Info logs a message at Info level if the logger is non-nil and enabled.
func Info(ctx context.Context, logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil || !logger.Enabled(ctx, slog.LevelInfo) {
		return
	}
	logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// InfoLazy logs at Info level with lazily-computed attributes.
func InfoLazy(ctx context.Context, logger *slog.Logger, msg string, fn func() []slog.Attr) {
	if logger == nil || !logger.Enabled(ctx, slog.LevelInfo) {
		return
	}
	logger.LogAttrs(ctx, slog.LevelInfo, msg, fn()...)
}

// Warn logs a message at Warn level if the logger is non-nil and enabled.
func Warn(ctx context.Context, logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil || !logger.Enabled(ctx, slog.LevelWarn) {
		return
	}
	logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

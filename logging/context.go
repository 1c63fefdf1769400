package logging

import "context"

// ctxKey is the key type for storing a Logger in context.
type ctxKey struct{}

// FromContext extracts the Logger from ctx.
// If none is attached, it returns a discarding Logger.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return Discard()
	}
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return Discard()
}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	if l == nil {
		l = Discard()
	}
	return context.WithValue(ctx, ctxKey{}, l)
}

package logging

import (
	"context"
	"io"
)

// prettyWriterKey carries a command's pretty output destination.
type prettyWriterKey struct{}

// WithWriter attaches w as the destination for pretty output logged with
// the returned context. Commands use it to keep stdout for data.
func WithWriter(ctx context.Context, w io.Writer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, prettyWriterKey{}, w)
}

// GetWriter returns the writer attached by WithWriter, or the shared
// console writer when ctx is nil or carries none.
func GetWriter(ctx context.Context) io.Writer {
	if ctx != nil {
		if w, ok := ctx.Value(prettyWriterKey{}).(io.Writer); ok && w != nil {
			return w
		}
	}
	return GetGlobalOutput()
}

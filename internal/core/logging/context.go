package logging

import "context"

type contextKey string

const (
	sourceKey  contextKey = "source"
	sectionKey contextKey = "section"
)

// WithSource adds the gallery source path to the context.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// WithSection adds a gallery section name to the context.
func WithSection(ctx context.Context, section string) context.Context {
	return context.WithValue(ctx, sectionKey, section)
}

// GetSource retrieves the gallery source path from the context.
// Returns empty string if not present.
func GetSource(ctx context.Context) string {
	if s, ok := ctx.Value(sourceKey).(string); ok {
		return s
	}
	return ""
}

// GetSection retrieves the section name from the context.
// Returns empty string if not present.
func GetSection(ctx context.Context) string {
	if s, ok := ctx.Value(sectionKey).(string); ok {
		return s
	}
	return ""
}

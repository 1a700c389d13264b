package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// ComponentCtx is Component with the source and section carried by ctx fixed
// as fields. Use it for loggers that outlive the call that owns ctx, such as
// the watcher goroutine.
func ComponentCtx(ctx context.Context, name string) zerolog.Logger {
	c := log.With().Str("cmp", name)
	if source := GetSource(ctx); source != "" {
		c = c.Str("source", source)
	}
	if section := GetSection(ctx); section != "" {
		c = c.Str("section", section)
	}
	return c.Logger()
}

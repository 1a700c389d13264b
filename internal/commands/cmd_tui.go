package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/lightbox/internal/core/catalog"
	"github.com/colonyops/lightbox/internal/core/eventbus"
	"github.com/colonyops/lightbox/internal/core/logging"
	"github.com/colonyops/lightbox/internal/tui"
)

const busBuffer = 64

type TuiCmd struct {
	flags *Flags

	noWatch bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-watch",
			Usage:       "do not reload the gallery when files change",
			Sources:     cli.EnvVars("LIGHTBOX_NO_WATCH"),
			Destination: &cmd.noWatch,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	src, g, err := catalog.Open(galleryPath(c.Args().Slice()), cfg)
	if err != nil {
		return fmt.Errorf("open gallery: %w", err)
	}

	ctx = logging.WithSource(ctx, src.Path)
	logger := logging.ComponentCtx(ctx, "tui")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := eventbus.New(busBuffer)
	eventbus.RegisterDebugLogger(bus, logging.Component("eventbus"))
	eventbus.NewNotificationRouter(bus).Register()
	go bus.Start(ctx)

	var warnings []string
	deps := tui.Deps{
		Config:  cfg,
		Logger:  logger,
		Bus:     bus,
		Source:  src,
		Gallery: g,
	}

	if cfg.Watch && !cmd.noWatch {
		w, err := catalog.NewWatcher(src, cfg.Scan.Exclude, logging.ComponentCtx(ctx, "watcher"))
		if err != nil {
			log.Warn().Err(err).Msg("gallery watcher disabled")
			warnings = append(warnings, "live reload disabled: "+err.Error())
		} else {
			defer func() {
				if err := w.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close gallery watcher")
				}
			}()
			deps.Changes = w.Changes()
		}
	}

	missing := 0
	for _, it := range catalog.Inventory(g) {
		if it.Missing {
			missing++
		}
	}
	if missing > 0 {
		warnings = append(warnings, fmt.Sprintf("%d image(s) not found on disk", missing))
	}

	logger.Info().
		Str("kind", src.Kind.String()).
		Int("images", g.Len()).
		Msg("opening gallery")

	m := tui.New(deps, tui.Opts{Warnings: warnings})
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if final, ok := finalModel.(tui.Model); ok {
		final.Teardown()
	}
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}

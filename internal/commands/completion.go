package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/lightbox/internal/core/catalog"
)

// SectionNameCompleter returns a ShellCompleteFunc that suggests the section
// names of the gallery in the working directory. It is used for the --section
// flag of ls.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func SectionNameCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		if flags.Config == nil {
			return
		}

		_, g, err := catalog.Open(galleryPath(cmd.Args().Slice()), flags.Config)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, s := range g.Sections {
			_, _ = fmt.Fprintln(w, s.Name)
		}
	}
}

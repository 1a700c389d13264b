package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/lightbox/internal/core/catalog"
	"github.com/colonyops/lightbox/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	section    string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List the images of a gallery",
		UsageText: "lightbox ls [--json] [--section NAME] [PATH]",
		Description: `Displays a table of every entry in the gallery at PATH (default: the
working directory) with its section, position, file size and reference.

PATH may be a gallery.yaml manifest or a directory. Directories without a
manifest are scanned using the scan settings from the config file.

Use --json for one JSON object per entry.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "section",
				Aliases:     []string{"s"},
				Usage:       "only list entries of the named section",
				Destination: &cmd.section,
			},
		},
		ShellComplete: SectionNameCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer
	path := galleryPath(c.Args().Slice())

	src, g, err := catalog.Open(path, cmd.flags.Config)
	if err != nil {
		if cmd.jsonOutput {
			_ = iojson.WriteError(out, "open gallery", map[string]any{"path": path, "error": err.Error()})
			return cli.Exit("", 1)
		}
		return fmt.Errorf("open gallery: %w", err)
	}

	items := filterSection(catalog.Inventory(g), cmd.section)

	if cmd.jsonOutput {
		for _, it := range items {
			if err := iojson.WriteLine(out, it); err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
		}
		return nil
	}

	if len(items) == 0 {
		_, _ = fmt.Fprintf(c.Root().ErrWriter, "No images found in %s\n", src.Path)
		return nil
	}

	return writeTable(out, src, items)
}

func filterSection(items []catalog.Item, section string) []catalog.Item {
	if section == "" {
		return items
	}

	var out []catalog.Item
	for _, it := range items {
		if it.Section == section {
			out = append(out, it)
		}
	}
	return out
}

func writeTable(out io.Writer, src catalog.Source, items []catalog.Item) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SECTION\tROW\tCOL\tSIZE\tREF")

	var total int64
	missing := 0
	for _, it := range items {
		size := humanize.Bytes(uint64(it.Size))
		switch {
		case it.Remote:
			size = "remote"
		case it.Missing:
			size = "missing"
			missing++
		default:
			total += it.Size
		}

		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", it.Section, it.Row+1, it.Col+1, size, displayRef(src.Dir, it.Ref))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("\n%s images, %s", humanize.Comma(int64(len(items))), humanize.Bytes(uint64(total)))
	if missing > 0 {
		summary += fmt.Sprintf(", %d missing", missing)
	}
	_, err := fmt.Fprintln(out, summary)
	return err
}

// displayRef shortens local refs under dir to relative paths.
func displayRef(dir, ref string) string {
	if catalog.IsRemote(ref) {
		return ref
	}
	if rel, err := filepath.Rel(dir, ref); err == nil && filepath.IsLocal(rel) {
		return rel
	}
	return ref
}

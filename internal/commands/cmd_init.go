package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/lightbox/internal/core/catalog"
	"github.com/colonyops/lightbox/internal/core/gallery"
	"github.com/colonyops/lightbox/internal/printer"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a gallery.yaml manifest for a directory of images",
		UsageText: "lightbox init [options] [DIR]",
		Description: `Scans DIR (default: the working directory) for images and writes a
gallery.yaml manifest describing them as a single section.

An interactive wizard asks for the gallery title, the section name and
description, and how many images to place per row. The manifest can then be
edited to split images into sections or weight individual entries.

Use --yes to accept all defaults without prompts.
Use --force to overwrite an existing manifest.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite an existing manifest",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

// initOptions are the answers collected by the wizard.
type initOptions struct {
	Title       string
	Section     string
	Description string
	RowSize     int
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	cfg := cmd.flags.Config

	dir, err := filepath.Abs(galleryPath(c.Args().Slice()))
	if err != nil {
		return fmt.Errorf("resolve dir: %w", err)
	}

	files, err := catalog.Scan(dir, cfg.Scan)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no images found in %s", dir)
	}

	path := filepath.Join(dir, catalog.ManifestName)
	interactive := !cmd.yes && term.IsTerminal(int(os.Stdin.Fd()))
	force := cmd.force

	if _, err := os.Stat(path); err == nil && !force {
		if !interactive {
			return fmt.Errorf("manifest exists at %s; use --force to overwrite", path)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Manifest already exists").
			Description(path + "\nOverwrite?").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
		force = true
	}

	opts := initOptions{
		Title:   filepath.Base(dir),
		Section: filepath.Base(dir),
		RowSize: cfg.Layout.RowSize,
	}

	if interactive {
		if err := promptInit(&opts, len(files)); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				p.Infof("Init cancelled")
				return nil
			}
			return err
		}
	}

	m := catalog.ManifestFromGallery(buildGallery(files, opts), dir)
	if err := catalog.WriteManifest(path, m, force); err != nil {
		return err
	}

	var total int64
	for _, f := range files {
		total += f.Size
	}

	p.Successf("Created manifest: %s", path)
	p.Printf("  %s images, %s, %d per row", humanize.Comma(int64(len(files))), humanize.Bytes(uint64(total)), opts.RowSize)
	p.Printf("")
	p.Printf("Run 'lightbox %s' to browse it.", dir)
	return nil
}

// buildGallery lays files out as one section of rows.
func buildGallery(files []catalog.File, opts initOptions) gallery.Gallery {
	return gallery.Gallery{
		Title: opts.Title,
		Sections: []gallery.Section{{
			Name:        opts.Section,
			Description: opts.Description,
			Rows:        catalog.Chunk(files, opts.RowSize),
		}},
	}
}

func promptInit(opts *initOptions, count int) error {
	rowOptions := make([]huh.Option[int], 0, 6)
	for n := 1; n <= 6; n++ {
		rowOptions = append(rowOptions, huh.NewOption(strconv.Itoa(n), n))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Gallery title").
				Value(&opts.Title),
			huh.NewInput().
				Title("Section name").
				Description(fmt.Sprintf("All %d images are placed in this section", count)).
				Value(&opts.Section).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("section name is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Section description").
				Description("Markdown, shown above the section").
				Value(&opts.Description),
			huh.NewSelect[int]().
				Title("Images per row").
				Options(rowOptions...).
				Value(&opts.RowSize),
		),
	)

	return form.Run()
}

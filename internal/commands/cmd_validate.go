package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/lightbox/internal/core/catalog"
	"github.com/colonyops/lightbox/internal/printer"
	"github.com/colonyops/lightbox/pkg/iojson"
)

type ValidateCmd struct {
	flags  *Flags
	format string
}

// NewValidateCmd creates a new validate command.
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// Register adds the validate command to the application.
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "validate",
		Usage:     "Validate the configuration and a gallery",
		UsageText: "lightbox validate [options] [PATH]",
		Description: `Validates the configuration file (scan globs, key binding conflicts) and the
gallery at PATH (default: the working directory). Manifests are checked for
structural problems and every local image reference is checked on disk.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

// Issue is a single validation finding.
type Issue struct {
	Scope   string `json:"scope"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Report is the result of a validate run.
type Report struct {
	Source   string  `json:"source"`
	Images   int     `json:"images"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// Valid reports whether no errors were found. Warnings do not fail validation.
func (r Report) Valid() bool {
	return len(r.Errors) == 0
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	report := cmd.validate(galleryPath(c.Args().Slice()))

	if cmd.format == "json" {
		if err := iojson.Write(c.Root().Writer, struct {
			Valid bool `json:"valid"`
			Report
		}{report.Valid(), report}); err != nil {
			return err
		}
	} else {
		outputText(printer.Ctx(ctx), report)
	}

	if !report.Valid() {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ValidateCmd) validate(path string) Report {
	var report Report

	if err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		report.Errors = append(report.Errors, issuesFrom("config", err)...)
	}

	src, err := catalog.Resolve(path)
	if err != nil {
		report.Errors = append(report.Errors, Issue{Scope: "gallery", Message: err.Error()})
		return report
	}
	report.Source = src.Path

	if src.Kind == catalog.SourceManifest {
		m, err := catalog.ReadManifest(src.Path)
		if err != nil {
			report.Errors = append(report.Errors, Issue{Scope: "manifest", Message: err.Error()})
			return report
		}
		if err := m.Validate(); err != nil {
			report.Errors = append(report.Errors, issuesFrom("manifest", err)...)
			return report
		}
	}

	g, err := catalog.Load(src, cmd.flags.Config)
	if err != nil {
		report.Errors = append(report.Errors, Issue{Scope: "gallery", Message: err.Error()})
		return report
	}
	report.Images = g.Len()

	for _, it := range catalog.Inventory(g) {
		field := fmt.Sprintf("%s[%d]", it.Section, it.Index)
		switch {
		case it.Missing:
			report.Errors = append(report.Errors, Issue{Scope: "image", Field: field, Message: "not found: " + it.Ref})
		case it.Kind != catalog.KindImage:
			report.Warnings = append(report.Warnings, Issue{Scope: "image", Field: field, Message: fmt.Sprintf("%s is not an image (%s)", it.Ref, it.Kind)})
		}
	}

	for _, s := range g.Sections {
		if s.Len() == 0 {
			report.Warnings = append(report.Warnings, Issue{Scope: "gallery", Field: s.Name, Message: "section has no images"})
		}
	}

	return report
}

// issuesFrom flattens criterio field errors into issues.
func issuesFrom(scope string, err error) []Issue {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []Issue{{Scope: scope, Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{Scope: scope, Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}

func outputText(p *printer.Printer, r Report) {
	if r.Source != "" {
		p.Section(r.Source)
	}

	for _, w := range r.Warnings {
		p.Warnf("%s", formatIssue(w))
	}
	for _, e := range r.Errors {
		p.Errorf("%s", formatIssue(e))
	}

	p.Printf("")
	if r.Valid() {
		p.Successf("%d images, configuration and gallery are valid", r.Images)
		return
	}
	p.Errorf("%d error(s) found", len(r.Errors))
}

func formatIssue(i Issue) string {
	if i.Field == "" {
		return fmt.Sprintf("%s: %s", i.Scope, i.Message)
	}
	return fmt.Sprintf("%s: %s: %s", i.Scope, i.Field, i.Message)
}

package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/lightbox/internal/core/gallery"
	"github.com/colonyops/lightbox/internal/core/validate"
)

// ManifestName is the file a gallery directory is described by.
const ManifestName = "gallery.yaml"

// ErrManifestExists is returned by WriteManifest when the target exists and
// overwriting was not requested.
var ErrManifestExists = errors.New("manifest already exists")

// Manifest is the on-disk gallery description.
type Manifest struct {
	Title    string            `yaml:"title,omitempty"`
	Sections []ManifestSection `yaml:"sections"`
}

// ManifestSection is one image-bearing surface.
type ManifestSection struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Rows        []ManifestRow `yaml:"rows"`
}

// ManifestRow groups entries. Unset policy fields fall back to the configured
// defaults.
type ManifestRow struct {
	Boost     *float64        `yaml:"boost,omitempty"`
	Shrink    *float64        `yaml:"shrink,omitempty"`
	MinWeight *float64        `yaml:"min_weight,omitempty"`
	Entries   []ManifestEntry `yaml:"entries"`
}

// ManifestEntry is a single image reference. Weight defaults to 1.
type ManifestEntry struct {
	Ref    string   `yaml:"ref"`
	Weight *float64 `yaml:"weight,omitempty"`
	Label  string   `yaml:"label,omitempty"`
}

// ReadManifest parses a manifest file without validating it.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// Validate reports every structural problem in the manifest as criterio
// field errors.
func (m *Manifest) Validate() error {
	if len(m.Sections) == 0 {
		return criterio.NewFieldErrors("sections", fmt.Errorf("at least one section is required"))
	}

	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]int, len(m.Sections))

	for i, s := range m.Sections {
		prefix := fmt.Sprintf("sections[%d]", i)

		if err := validate.Name(s.Name); err != nil {
			errs = errs.Append(prefix+".name", err)
		} else if j, dup := seen[s.Name]; dup {
			errs = errs.Append(prefix+".name", fmt.Errorf("duplicate section %q (also sections[%d])", s.Name, j))
		} else {
			seen[s.Name] = i
		}

		if len(s.Rows) == 0 {
			errs = errs.Append(prefix+".rows", fmt.Errorf("at least one row is required"))
		}

		for r, row := range s.Rows {
			rprefix := fmt.Sprintf("%s.rows[%d]", prefix, r)

			if len(row.Entries) == 0 {
				errs = errs.Append(rprefix+".entries", fmt.Errorf("at least one entry is required"))
			}
			if row.Boost != nil {
				if err := validate.NonNegative(*row.Boost); err != nil {
					errs = errs.Append(rprefix+".boost", err)
				}
			}
			if row.Shrink != nil {
				if err := validate.NonNegative(*row.Shrink); err != nil {
					errs = errs.Append(rprefix+".shrink", err)
				}
			}
			if row.MinWeight != nil {
				if err := validate.Weight(*row.MinWeight); err != nil {
					errs = errs.Append(rprefix+".min_weight", err)
				}
			}

			for c, e := range row.Entries {
				eprefix := fmt.Sprintf("%s.entries[%d]", rprefix, c)
				if err := validate.Ref(e.Ref); err != nil {
					errs = errs.Append(eprefix+".ref", err)
				}
				if e.Weight != nil {
					if err := validate.Weight(*e.Weight); err != nil {
						errs = errs.Append(eprefix+".weight", err)
					}
				}
			}
		}
	}

	return errs.ToError()
}

// Gallery converts the manifest into the gallery domain. Relative refs are
// resolved against dir; URIs are left untouched.
func (m *Manifest) Gallery(dir string, def gallery.Policy) gallery.Gallery {
	g := gallery.Gallery{
		Title:    m.Title,
		Sections: make([]gallery.Section, 0, len(m.Sections)),
	}

	for _, s := range m.Sections {
		sec := gallery.Section{
			Name:        s.Name,
			Description: s.Description,
			Rows:        make([]gallery.Row, 0, len(s.Rows)),
		}
		for _, row := range s.Rows {
			gr := gallery.Row{
				Policy:  row.policy(def),
				Entries: make([]gallery.Entry, 0, len(row.Entries)),
			}
			for _, e := range row.Entries {
				weight := 1.0
				if e.Weight != nil {
					weight = *e.Weight
				}
				gr.Entries = append(gr.Entries, gallery.Entry{
					Ref:    ResolveRef(dir, e.Ref),
					Weight: weight,
					Label:  e.Label,
				})
			}
			sec.Rows = append(sec.Rows, gr)
		}
		g.Sections = append(g.Sections, sec)
	}

	return g
}

// policy returns the zero Policy when the row overrides nothing, so the grid
// keeps using the configured default.
func (r ManifestRow) policy(def gallery.Policy) gallery.Policy {
	if r.Boost == nil && r.Shrink == nil && r.MinWeight == nil {
		return gallery.Policy{}
	}

	p := def
	if r.Boost != nil {
		p.Boost = *r.Boost
	}
	if r.Shrink != nil {
		p.Shrink = *r.Shrink
	}
	if r.MinWeight != nil {
		p.MinWeight = *r.MinWeight
	}
	return p
}

// IsRemote reports whether ref is a URI rather than a file path.
func IsRemote(ref string) bool {
	return strings.Contains(ref, "://")
}

// ResolveRef joins a relative file ref onto dir.
func ResolveRef(dir, ref string) string {
	if IsRemote(ref) || filepath.IsAbs(ref) || dir == "" {
		return ref
	}
	return filepath.Join(dir, filepath.FromSlash(ref))
}

// ManifestFromGallery builds a manifest for g with refs made relative to dir
// where possible.
func ManifestFromGallery(g gallery.Gallery, dir string) *Manifest {
	m := &Manifest{Title: g.Title}

	for _, s := range g.Sections {
		ms := ManifestSection{Name: s.Name, Description: s.Description}
		for _, row := range s.Rows {
			var mr ManifestRow
			if !row.Policy.IsZero() {
				mr.Boost = ptr(row.Policy.Boost)
				mr.Shrink = ptr(row.Policy.Shrink)
				mr.MinWeight = ptr(row.Policy.MinWeight)
			}
			for _, e := range row.Entries {
				me := ManifestEntry{Ref: relativeRef(dir, e.Ref), Label: e.Label}
				if e.Weight != 1 {
					me.Weight = ptr(e.Weight)
				}
				mr.Entries = append(mr.Entries, me)
			}
			ms.Rows = append(ms.Rows, mr)
		}
		m.Sections = append(m.Sections, ms)
	}

	return m
}

// WriteManifest encodes m to path. An existing file is only replaced when
// force is set.
func WriteManifest(path string, m *Manifest, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s: %w", path, ErrManifestExists)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func relativeRef(dir, ref string) string {
	if IsRemote(ref) || dir == "" {
		return ref
	}
	rel, err := filepath.Rel(dir, ref)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ref
	}
	return filepath.ToSlash(rel)
}

func ptr[T any](v T) *T { return &v }

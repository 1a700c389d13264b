// Package catalog turns gallery sources on disk into the gallery domain. A
// source is either a manifest file or a directory that is scanned for images.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/lightbox/internal/core/config"
	"github.com/colonyops/lightbox/internal/core/gallery"
)

// SourceKind tells how a source is turned into a gallery.
type SourceKind int

const (
	SourceManifest SourceKind = iota
	SourceDirectory
)

func (k SourceKind) String() string {
	switch k {
	case SourceManifest:
		return "manifest"
	case SourceDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Source is a resolved gallery location.
type Source struct {
	Path string // absolute manifest file or directory
	Dir  string // directory refs resolve against
	Kind SourceKind
}

// Resolve inspects path. A directory containing a manifest resolves to that
// manifest; any other directory is scanned.
func Resolve(path string) (Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Source{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return Source{}, fmt.Errorf("open gallery: %w", err)
	}

	if !info.IsDir() {
		return Source{Path: abs, Dir: filepath.Dir(abs), Kind: SourceManifest}, nil
	}

	manifest := filepath.Join(abs, ManifestName)
	if fi, err := os.Stat(manifest); err == nil && !fi.IsDir() {
		return Source{Path: manifest, Dir: abs, Kind: SourceManifest}, nil
	}

	return Source{Path: abs, Dir: abs, Kind: SourceDirectory}, nil
}

// Load builds the gallery for src.
func Load(src Source, cfg *config.Config) (gallery.Gallery, error) {
	switch src.Kind {
	case SourceManifest:
		m, err := ReadManifest(src.Path)
		if err != nil {
			return gallery.Gallery{}, err
		}
		if err := m.Validate(); err != nil {
			return gallery.Gallery{}, fmt.Errorf("invalid manifest %s: %w", src.Path, err)
		}
		g := m.Gallery(src.Dir, cfg.Policy())
		if g.Title == "" {
			g.Title = filepath.Base(src.Dir)
		}
		return g, nil
	case SourceDirectory:
		return ScanGallery(src.Path, cfg)
	default:
		return gallery.Gallery{}, fmt.Errorf("unknown source kind %d", src.Kind)
	}
}

// Open resolves path and loads it.
func Open(path string, cfg *config.Config) (Source, gallery.Gallery, error) {
	src, err := Resolve(path)
	if err != nil {
		return Source{}, gallery.Gallery{}, err
	}
	g, err := Load(src, cfg)
	if err != nil {
		return src, gallery.Gallery{}, err
	}
	return src, g, nil
}

// Item describes one entry of a loaded gallery together with what is known
// about its file.
type Item struct {
	Section string  `json:"section"`
	Row     int     `json:"row"`
	Col     int     `json:"col"`
	Index   int     `json:"index"` // position in the section's image list
	Ref     string  `json:"ref"`
	Label   string  `json:"label,omitempty"`
	Weight  float64 `json:"weight"`
	Size    int64   `json:"size"`
	Kind    Kind    `json:"kind"`
	Remote  bool    `json:"remote,omitempty"`
	Missing bool    `json:"missing,omitempty"`
}

// Inventory stats every local ref in g. Remote refs are never fetched.
func Inventory(g gallery.Gallery) []Item {
	items := make([]Item, 0, g.Len())
	for _, s := range g.Sections {
		idx := 0
		for r, row := range s.Rows {
			for c, e := range row.Entries {
				it := Item{
					Section: s.Name,
					Row:     r,
					Col:     c,
					Index:   idx,
					Ref:     e.Ref,
					Label:   e.Label,
					Weight:  e.Weight,
					Kind:    Classify(e.Ref),
					Remote:  IsRemote(e.Ref),
				}
				if !it.Remote {
					if info, err := os.Stat(e.Ref); err == nil && !info.IsDir() {
						it.Size = info.Size()
					} else {
						it.Missing = true
					}
				}
				items = append(items, it)
				idx++
			}
		}
	}
	return items
}

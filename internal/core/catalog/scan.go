package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/lightbox/internal/core/config"
	"github.com/colonyops/lightbox/internal/core/gallery"
)

// Kind classifies a file by extension.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindOther Kind = "other"
)

// File is a scanned file that matched the include globs.
type File struct {
	Path    string    `json:"path"`
	Rel     string    `json:"rel"` // slash-separated, relative to the scan root
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
	Kind    Kind      `json:"kind"`
}

// Classify returns the kind of a file from its extension.
func Classify(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff", ".avif", ".heic", ".svg":
		return KindImage
	case ".mp4", ".mov", ".mkv", ".webm", ".avi", ".m4v":
		return KindVideo
	default:
		return KindOther
	}
}

// Scan walks root and returns files whose relative path matches any include
// glob and no exclude glob. Hidden directories are skipped.
func Scan(root string, sc config.ScanConfig) ([]File, error) {
	var files []File

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			return rerr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && (strings.HasPrefix(d.Name(), ".") || matchAny(sc.Exclude, rel)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !matchAny(sc.Include, rel) || matchAny(sc.Exclude, rel) {
			return nil
		}

		info, ierr := d.Info()
		if ierr != nil {
			return nil
		}
		files = append(files, File{
			Path:    path,
			Rel:     rel,
			Name:    d.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Kind:    Classify(path),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	if err := SortFiles(files, sc.Sort, sc.Order); err != nil {
		return nil, err
	}
	return files, nil
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// SortFiles orders files in place by name, mtime or size. Ties fall back to
// the relative path so the order is stable across runs.
func SortFiles(files []File, by, order string) error {
	desc := strings.EqualFold(order, config.OrderDesc)

	var compare func(a, b File) int
	switch by {
	case config.SortName, "":
		compare = func(a, b File) int {
			return strings.Compare(strings.ToLower(a.Rel), strings.ToLower(b.Rel))
		}
	case config.SortMtime:
		compare = func(a, b File) int { return a.ModTime.Compare(b.ModTime) }
	case config.SortSize:
		compare = func(a, b File) int {
			switch {
			case a.Size < b.Size:
				return -1
			case a.Size > b.Size:
				return 1
			default:
				return 0
			}
		}
	default:
		return fmt.Errorf("invalid sort: %s", by)
	}

	sort.SliceStable(files, func(i, j int) bool {
		c := compare(files[i], files[j])
		if c == 0 {
			c = strings.Compare(files[i].Rel, files[j].Rel)
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
	return nil
}

// Chunk splits files into rows of at most size entries, each weighted 1.
func Chunk(files []File, size int) []gallery.Row {
	if size < 1 {
		size = 1
	}

	rows := make([]gallery.Row, 0, (len(files)+size-1)/size)
	for start := 0; start < len(files); start += size {
		end := min(start+size, len(files))
		row := gallery.Row{Entries: make([]gallery.Entry, 0, end-start)}
		for _, f := range files[start:end] {
			row.Entries = append(row.Entries, gallery.Entry{
				Ref:    f.Path,
				Weight: 1,
				Label:  f.Name,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// ScanGallery turns a directory into a single-section gallery.
func ScanGallery(root string, cfg *config.Config) (gallery.Gallery, error) {
	files, err := Scan(root, cfg.Scan)
	if err != nil {
		return gallery.Gallery{}, err
	}

	name := filepath.Base(root)
	if abs, err := filepath.Abs(root); err == nil {
		name = filepath.Base(abs)
	}

	return gallery.Gallery{
		Title: name,
		Sections: []gallery.Section{{
			Name: name,
			Rows: Chunk(files, cfg.Layout.RowSize),
		}},
	}, nil
}

package convert

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DiscoveredFile is one candidate input file together with the input-root
// argument it was found under. The origin root is needed later to strip the
// common path prefix when mirroring the tree.
type DiscoveredFile struct {
	AbsolutePath string
	OriginRoot   string
}

// Discoverer finds candidate input files below an input-root argument.
type Discoverer struct {
	log *slog.Logger
}

// NewDiscoverer returns a Discoverer logging through log (nil means
// slog.Default()).
func NewDiscoverer(log *slog.Logger) *Discoverer {
	if log == nil {
		log = slog.Default()
	}
	return &Discoverer{log: log}
}

// Discover lists the input files under root. A root that is itself a file is
// returned as-is, bypassing extension filtering entirely; a directory root is
// scanned for filenames with one of the given extension suffixes, descending
// into subdirectories only when recursive is set. Within one directory,
// matches are grouped by extension in the order given; the order of files
// inside a group follows the filesystem listing.
func (d *Discoverer) Discover(root string, extensions []string, recursive bool) ([]DiscoveredFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInputNotFound, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", root, err)
	}

	if !info.IsDir() {
		d.log.Debug("input is a single file", "path", root)
		return []DiscoveredFile{{AbsolutePath: abs, OriginRoot: abs}}, nil
	}

	d.log.Debug("walking input directory", "path", abs, "recursive", recursive)

	var files []DiscoveredFile
	pending := []string{abs}
	for len(pending) > 0 {
		dir := pending[0]
		pending = pending[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read directory %q: %w", dir, err)
		}

		d.log.Debug("scanning directory", "dir", dir)

		var names []string
		for _, entry := range entries {
			if entry.IsDir() {
				if recursive {
					pending = append(pending, filepath.Join(dir, entry.Name()))
				}
				continue
			}
			names = append(names, entry.Name())
		}

		for _, ext := range extensions {
			for _, name := range names {
				if !strings.HasSuffix(name, ext) {
					continue
				}
				path := filepath.Join(dir, name)
				d.log.Debug("found input file", "path", path)
				files = append(files, DiscoveredFile{AbsolutePath: path, OriginRoot: abs})
			}
		}
	}

	return files, nil
}

package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSource reads records from a filesystem, resolving relative paths
// against a root directory.
type FileSource struct {
	fs   afero.Fs
	root string
}

// NewFileSource creates a source over the OS filesystem.
func NewFileSource(root string) *FileSource {
	return NewFileSourceFs(afero.NewOsFs(), root)
}

// NewFileSourceFs creates a source over an arbitrary afero filesystem.
func NewFileSourceFs(fsys afero.Fs, root string) *FileSource {
	return &FileSource{fs: fsys, root: root}
}

// Read loads and decodes the file at p.
func (s *FileSource) Read(ctx context.Context, p string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full := p
	if !filepath.IsAbs(p) && s.root != "" {
		full = filepath.Join(s.root, p)
	}

	raw, err := afero.ReadFile(s.fs, full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", full, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", full, err)
	}

	return Decode(full, raw)
}

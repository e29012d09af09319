package moonicon

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirPerm is the permission used when Generate creates the output directory.
const DirPerm = 0o755

// Result describes one icon written by Generate.
type Result struct {
	Size int
	Path string
}

// FileName returns the file name Generate uses for an icon of the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Generate renders one icon per configured size and writes them to dir as
// icon<size>.png, creating dir if needed. Icons are written in order and
// the first failure stops generation; files already written are kept.
func Generate(dir string, opts ...Option) ([]Result, error) {
	o := buildOptions(opts)
	if err := o.style.validate(); err != nil {
		return nil, err
	}
	for _, size := range o.sizes {
		if size <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
		}
	}

	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return nil, fmt.Errorf("moonicon: create directory: %w", err)
	}

	results := make([]Result, 0, len(o.sizes))
	for _, size := range o.sizes {
		path := filepath.Join(dir, FileName(size))
		if err := render(size, o).SavePNG(path); err != nil {
			return results, fmt.Errorf("moonicon: write %s: %w", path, err)
		}

		r := Result{Size: size, Path: path}
		results = append(results, r)
		Logger().Info("moonicon: icon written", "path", path, "size", size)
		if o.progress != nil {
			o.progress(r)
		}
	}
	return results, nil
}

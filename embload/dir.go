package embload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// DefaultPattern is the filename pattern used when none is given: the entity
// identifier plus the ".npy" extension.
const DefaultPattern = "%s.npy"

// DirLoader reads per-entity embedding matrices from NumPy ".npy" files in a
// directory. Files ending in ".gz" are transparently gunzipped.
//
// The filename is derived from the entity identifier via a pattern with a
// single %s verb, so one loader can select a specific export layout, e.g.
// "%s_layer32.npy" for a per-layer dump.
type DirLoader struct {
	root    string
	pattern string
}

// NewDirLoader creates a loader rooted at the given directory. An empty
// pattern means DefaultPattern.
func NewDirLoader(root, pattern string) *DirLoader {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &DirLoader{root: root, pattern: pattern}
}

// Load reads and decodes the embedding matrix for an entity.
// A missing file satisfies `errors.Is(err, ErrNotFound)`.
func (l *DirLoader) Load(entityID string) (*mat.Dense, error) {
	path := filepath.Join(l.root, fmt.Sprintf(l.pattern, entityID))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("embload: open embeddings for entity %q: %w", entityID, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("embload: gunzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	m, err := readNpy(r)
	if err != nil {
		return nil, fmt.Errorf("embload: decode %s: %w", path, err)
	}
	return m, nil
}

// readNpy decodes a 2D float32 or float64 ".npy" stream into a dense matrix.
func readNpy(r io.Reader) (*mat.Dense, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return nil, err
	}

	shape := nr.Header.Descr.Shape
	if len(shape) != 2 {
		return nil, fmt.Errorf("embeddings must be a 2D array, got shape %v", shape)
	}
	rows, cols := shape[0], shape[1]
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("embeddings must be non-empty, got shape %v", shape)
	}
	if nr.Header.Descr.Fortran {
		return nil, fmt.Errorf("fortran-order arrays are not supported")
	}

	dtype := nr.Header.Descr.Type
	switch {
	case strings.HasSuffix(dtype, "f8"):
		data := make([]float64, rows*cols)
		if err := nr.Read(&data); err != nil {
			return nil, err
		}
		return mat.NewDense(rows, cols, data), nil
	case strings.HasSuffix(dtype, "f4"):
		raw := make([]float32, rows*cols)
		if err := nr.Read(&raw); err != nil {
			return nil, err
		}
		data := make([]float64, len(raw))
		for i, v := range raw {
			data[i] = float64(v)
		}
		return mat.NewDense(rows, cols, data), nil
	default:
		return nil, fmt.Errorf("unsupported dtype %q (want float32 or float64)", dtype)
	}
}

package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"meshconv/pkg/format"
	"os"
	"path/filepath"
)

var ErrUnsupportedFormat = errors.New("no codec registered for format")

type codec interface {
	decode(r io.Reader) (*Mesh, error)
	encode(m *Mesh, w io.Writer) error
}

var codecs = map[format.Format]codec{
	format.STL: stlCodec{},
	format.OBJ: objCodec{},
}

func Supported(f format.Format) bool {
	_, found := codecs[f]
	return found
}

func Decode(f format.Format, r io.Reader) (*Mesh, error) {
	c, found := codecs[f]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return c.decode(r)
}

func Encode(m *Mesh, f format.Format, w io.Writer) error {
	c, found := codecs[f]
	if !found {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if len(m.Faces) == 0 {
		return ErrEmptyMesh
	}
	return c.encode(m, w)
}

// Load decodes the mesh at path, picking the decoder from the file extension.
func Load(path string) (*Mesh, format.Format, error) {
	f, err := format.FromFilename(filepath.Base(path))
	if err != nil {
		return nil, "", fmt.Errorf("detecting format of %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	m, err := Decode(f, bufio.NewReader(file))
	if err != nil {
		return nil, "", err
	}
	return m, f, nil
}

// Export writes m to path in format f. Nothing is left at path when encoding fails.
func Export(m *Mesh, path string, f format.Format) (retErr error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); retErr == nil {
			retErr = closeErr
		}
		if retErr != nil {
			_ = os.Remove(path)
		}
	}()

	w := bufio.NewWriter(file)
	if err = Encode(m, f, w); err != nil {
		return err
	}
	return w.Flush()
}

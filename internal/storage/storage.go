package storage

import (
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"io"
	"io/fs"
	"meshconv/pkg/format"
	"meshconv/pkg/model"
	"os"
	"path/filepath"
	"strings"
)

const tempFilePattern = ".partial-*"

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("file name does not carry a supported extension")
)

// Area is a flat directory of files named {token}.{ext}. Every name it hands out is freshly generated, so
// concurrent writers never share a path and no locking is needed.
type Area struct {
	root string
}

func New(root string) (*Area, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving storage root: %w", err)
	}
	if err = os.MkdirAll(absRoot, 0755); err != nil {
		return nil, fmt.Errorf("creating storage root: %w", err)
	}
	return &Area{root: absRoot}, nil
}

func (a *Area) Root() string {
	return a.root
}

// Put stores content under a generated name that keeps only the extension of clientName.
func (a *Area) Put(clientName string, content io.Reader) (model.StoredFile, error) {
	f, err := format.FromFilename(SanitizeFilename(clientName))
	if err != nil {
		return model.StoredFile{}, fmt.Errorf("%w: %q", ErrInvalidName, clientName)
	}
	return a.write(newToken()+f.Ext(), f, content)
}

// PutScratch stores content under a generated name with the given prefix, for files that only live for the
// duration of one request.
func (a *Area) PutScratch(prefix string, f format.Format, content io.Reader) (model.StoredFile, error) {
	return a.write(scratchName(prefix, f), f, content)
}

// Scratch reserves a generated name for a file that the caller will create itself.
func (a *Area) Scratch(prefix string, f format.Format) model.StoredFile {
	name := scratchName(prefix, f)
	return model.StoredFile{Name: name, Path: filepath.Join(a.root, name), Format: f}
}

// Resolve looks up a stored file by name. Names with separators, dot prefixes or anything else that could reach
// outside the root resolve to ErrNotFound.
func (a *Area) Resolve(name string) (model.StoredFile, error) {
	path, ok := a.pathFor(name)
	if !ok {
		return model.StoredFile{}, ErrNotFound
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.StoredFile{}, ErrNotFound
	} else if err != nil {
		return model.StoredFile{}, err
	}
	if !info.Mode().IsRegular() {
		return model.StoredFile{}, ErrNotFound
	}

	f, _ := format.FromFilename(name)
	return model.StoredFile{Name: name, Path: path, Format: f, Size: info.Size()}, nil
}

// Remove deletes a stored file. Missing files and names outside the root are ignored.
func (a *Area) Remove(name string) error {
	path, ok := a.pathFor(name)
	if !ok {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing stored file: %w", err)
	}
	return nil
}

func (a *Area) write(name string, f format.Format, content io.Reader) (model.StoredFile, error) {
	tmpFile, err := os.CreateTemp(a.root, tempFilePattern)
	if err != nil {
		return model.StoredFile{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	size, err := io.Copy(tmpFile, content)
	if err == nil {
		err = tmpFile.Sync()
	}
	if closeErr := tmpFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return model.StoredFile{}, fmt.Errorf("writing stored file: %w", err)
	}

	path := filepath.Join(a.root, name)
	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return model.StoredFile{}, fmt.Errorf("moving stored file into place: %w", err)
	}

	return model.StoredFile{Name: name, Path: path, Format: f, Size: size}, nil
}

func (a *Area) pathFor(name string) (string, bool) {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return "", false
	}
	path := filepath.Join(a.root, name)
	rel, err := filepath.Rel(a.root, path)
	if err != nil || rel != name {
		return "", false
	}
	return path, true
}

// SanitizeFilename strips directory components and control characters from a client supplied file name.
func SanitizeFilename(fileName string) string {
	fileName = strings.ReplaceAll(fileName, `\`, "/")
	if slashIdx := strings.LastIndex(fileName, "/"); slashIdx >= 0 {
		fileName = fileName[slashIdx+1:]
	}

	fileName = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, fileName)

	return strings.Trim(fileName, " .")
}

func newToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

func scratchName(prefix string, f format.Format) string {
	return prefix + "_" + newToken() + f.Ext()
}

package convert

import (
	"errors"
	"fmt"
	"meshconv/internal/logging"
	"meshconv/internal/storage"
	"meshconv/pkg/format"
	"meshconv/pkg/mesh"
	"meshconv/pkg/model"
	"os"
	"time"
)

const exportPrefix = "export"

// ErrConversionFailed wraps every decode or encode failure. The underlying library error stays in the chain.
var ErrConversionFailed = errors.New("conversion failed")

type Result struct {
	File  model.StoredFile
	Stats model.ConversionStats
}

// Converter turns stored files from one mesh format into another, writing results into the storage area.
type Converter struct {
	area   *storage.Area
	logger *logging.Logger
}

func New(area *storage.Area, logger *logging.Logger) *Converter {
	return &Converter{area: area, logger: logger}
}

// Convert decodes input and exports it as to. The decoder follows the extension of input, from is only checked
// against it. On success the caller owns Result.File and must remove it.
func (c *Converter) Convert(input model.StoredFile, from, to format.Format) (Result, error) {
	var stats model.ConversionStats

	loadStart := time.Now()
	m, detected, err := mesh.Load(input.Path)
	if err != nil {
		return Result{}, failed(err)
	}
	stats.Load = time.Since(loadStart)
	stats.Vertices, stats.Faces = len(m.Vertices), len(m.Faces)

	if detected != from {
		c.logger.Warn("Declared source format differs from stored extension, using extension",
			"declared", from, "detected", detected, "file", input.Name)
	}

	output := c.area.Scratch(exportPrefix, to)
	exportStart := time.Now()
	if err = mesh.Export(m, output.Path, to); err != nil {
		_ = c.area.Remove(output.Name)
		return Result{}, failed(err)
	}
	stats.Export = time.Since(exportStart)

	info, err := os.Stat(output.Path)
	if err != nil {
		_ = c.area.Remove(output.Name)
		return Result{}, failed(err)
	}
	output.Size = info.Size()
	stats.OutputSize = output.Size

	return Result{File: output, Stats: stats}, nil
}

// Inspect decodes a stored file without converting it.
func (c *Converter) Inspect(input model.StoredFile) (*mesh.Mesh, error) {
	m, _, err := mesh.Load(input.Path)
	if err != nil {
		return nil, failed(err)
	}
	return m, nil
}

func failed(err error) error {
	return fmt.Errorf("%w: %w", ErrConversionFailed, err)
}

package convert

import (
	"bytes"
	"errors"
	"meshconv/internal/logging"
	"meshconv/internal/storage"
	"meshconv/pkg/format"
	"meshconv/pkg/mesh"
	"meshconv/pkg/model"
	"meshconv/test"
	"os"
	"testing"
)

func newTestConverter(t *testing.T) (*Converter, *storage.Area) {
	t.Helper()
	area, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("Error creating storage area: %s", err)
	}
	return New(area, logging.BuildLogger()), area
}

func storeScratch(t *testing.T, area *storage.Area, f format.Format, content []byte) model.StoredFile {
	t.Helper()
	input, err := area.PutScratch("temp_input", f, bytes.NewReader(content))
	if err != nil {
		t.Fatalf("Error storing input: %s", err)
	}
	return input
}

func TestConvertPreservesGeometry(t *testing.T) {
	converter, area := newTestConverter(t)
	input := storeScratch(t, area, format.STL, test.CubeSTL())

	result, err := converter.Convert(input, format.STL, format.OBJ)
	if err != nil {
		t.Fatalf("Error converting: %s", err)
	}

	if result.File.Format != format.OBJ || result.File.Size == 0 {
		t.Errorf("Unexpected output file %+v", result.File)
	}
	if result.Stats.Vertices != test.CubeVertexCount || result.Stats.Faces != test.CubeFaceCount {
		t.Errorf("Unexpected stats %+v", result.Stats)
	}

	content, err := os.ReadFile(result.File.Path)
	if err != nil {
		t.Fatalf("Error reading output: %s", err)
	}
	reimported, err := mesh.Decode(format.OBJ, bytes.NewReader(content))
	if err != nil {
		t.Fatalf("Error reimporting output: %s", err)
	}
	if len(reimported.Vertices) != test.CubeVertexCount || len(reimported.Faces) != test.CubeFaceCount {
		t.Errorf("Reimport has %d vertices and %d faces", len(reimported.Vertices), len(reimported.Faces))
	}
}

func TestConvertFailureLeavesNoOutput(t *testing.T) {
	converter, area := newTestConverter(t)
	input := storeScratch(t, area, format.STL, nil)

	_, err := converter.Convert(input, format.STL, format.OBJ)
	if !errors.Is(err, ErrConversionFailed) {
		t.Fatalf("Expected ErrConversionFailed, got %v", err)
	}

	if entries := test.DirEntries(t, area.Root()); len(entries) != 1 || entries[0] != input.Name {
		t.Errorf("Expected only the input to remain, found %v", entries)
	}
}

func TestConvertUsesStoredExtension(t *testing.T) {
	converter, area := newTestConverter(t)
	input := storeScratch(t, area, format.OBJ, test.CubeOBJ())

	result, err := converter.Convert(input, format.STL, format.STL)
	if err != nil {
		t.Fatalf("Expected decode by extension to succeed, got %s", err)
	}
	if result.Stats.Faces != test.CubeFaceCount {
		t.Errorf("Unexpected stats %+v", result.Stats)
	}
}

func TestInspect(t *testing.T) {
	converter, area := newTestConverter(t)

	m, err := converter.Inspect(storeScratch(t, area, format.OBJ, test.CubeOBJ()))
	if err != nil {
		t.Fatalf("Error inspecting: %s", err)
	}
	if len(m.Faces) != test.CubeFaceCount {
		t.Errorf("Expected %d faces, got %d", test.CubeFaceCount, len(m.Faces))
	}

	if _, err = converter.Inspect(storeScratch(t, area, format.OBJ, []byte("garbage"))); !errors.Is(err, ErrConversionFailed) {
		t.Errorf("Expected ErrConversionFailed, got %v", err)
	}
}

package cli

import (
	"bytes"
	"errors"
	"meshconv/pkg/format"
	"meshconv/test"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Error writing %s: %s", path, err)
	}
	return path
}

func TestConvertMeshFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "cube.stl", test.CubeSTL())
	output := filepath.Join(dir, "cube.obj")

	stats, err := ConvertMeshFile(input, output, "", "")
	if err != nil {
		t.Fatalf("Error converting: %s", err)
	}
	if stats.Vertices != test.CubeVertexCount || stats.Faces != test.CubeFaceCount || stats.OutputSize == 0 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	var out bytes.Buffer
	if err = InspectMeshFile(&out, output, ""); err != nil {
		t.Fatalf("Error inspecting output: %s", err)
	}
	if !strings.Contains(out.String(), "Vertices: 8\n") || !strings.Contains(out.String(), "Faces: 12\n") {
		t.Errorf("Unexpected inspect output:\n%s", out.String())
	}
}

func TestConvertMeshFileExplicitFormats(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "cube.mesh", test.CubeOBJ())
	output := filepath.Join(dir, "converted.bin")

	if _, err := ConvertMeshFile(input, output, "obj", "stl"); err != nil {
		t.Fatalf("Error converting: %s", err)
	}

	var out bytes.Buffer
	if err := InspectMeshFile(&out, output, "STL"); err != nil {
		t.Fatalf("Error inspecting output: %s", err)
	}
	if !strings.Contains(out.String(), "Faces: 12\n") {
		t.Errorf("Unexpected inspect output:\n%s", out.String())
	}
}

func TestConvertMeshFileErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "cube.stl", test.CubeSTL())

	if _, err := ConvertMeshFile(input, filepath.Join(dir, "cube"), "", ""); !errors.Is(err, format.ErrNoExtension) {
		t.Errorf("Expected ErrNoExtension, got %v", err)
	}
	if _, err := ConvertMeshFile(input, filepath.Join(dir, "cube.ply"), "", ""); !errors.Is(err, format.ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}

	broken := writeFile(t, dir, "broken.obj", []byte("garbage that is not geometry"))
	output := filepath.Join(dir, "broken.stl")
	if _, err := ConvertMeshFile(broken, output, "", ""); err == nil {
		t.Errorf("Expected error converting malformed input")
	}
	if _, err := os.Stat(output); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected no output after failed conversion, got %v", err)
	}
}

func TestRootCommandRejectsBadLogLevel(t *testing.T) {
	cmd := RootCommand()
	cmd.SetArgs([]string{"--log-level", "loud", "inspect", "--input", "missing.stl"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("Expected invalid log level error, got %v", err)
	}
}

func TestRootCommandRunsInspect(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "cube.obj", test.CubeOBJ())

	var out bytes.Buffer
	cmd := RootCommand()
	cmd.SetArgs([]string{"--log-level", "info", "inspect", "--input", source})
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Error running inspect: %s", err)
	}
	if !strings.Contains(out.String(), "Bounds: min [0 0 0], max [1 1 1]") {
		t.Errorf("Unexpected output:\n%s", out.String())
	}
}

func TestNewSpinnerWritesToStderr(t *testing.T) {
	if s := NewSpinner(); s.Writer != os.Stderr {
		t.Errorf("Expected spinner to draw on stderr")
	}
}

func TestRequiredFlags(t *testing.T) {
	cmd := RootCommand()
	cmd.SetArgs([]string{"convert", "--input", "cube.stl"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "output") {
		t.Errorf("Expected missing --output to be reported, got %v", err)
	}
}

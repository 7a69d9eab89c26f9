package format

import (
	"errors"
	"strings"
)

// Format identifies a mesh file format. Values are the lower-case file extension without the dot.
type Format string

const (
	STL Format = "stl"
	OBJ Format = "obj"
)

var (
	ErrUnknownFormat = errors.New("unknown mesh format")
	ErrNoExtension   = errors.New("file name has no extension")
)

// All returns every format the service knows how to read and write.
func All() []Format {
	return []Format{STL, OBJ}
}

// Parse maps a format token such as "STL" or " obj" to a Format.
func Parse(token string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(token)))
	switch f {
	case STL, OBJ:
		return f, nil
	}
	return "", ErrUnknownFormat
}

// FromFilename returns the format named by the last extension of fileName.
func FromFilename(fileName string) (Format, error) {
	ext, ok := Extension(fileName)
	if !ok {
		return "", ErrNoExtension
	}
	return Parse(ext)
}

// Extension returns the text after the last dot in fileName, lower-cased. ok is false when there is no dot or
// nothing follows it.
func Extension(fileName string) (ext string, ok bool) {
	dotIdx := strings.LastIndex(fileName, ".")
	if dotIdx < 0 || dotIdx == len(fileName)-1 {
		return "", false
	}
	return strings.ToLower(fileName[dotIdx+1:]), true
}

func (f Format) String() string {
	return string(f)
}

// Ext returns the file extension for f, including the leading dot.
func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) ContentType() string {
	switch f {
	case STL:
		return "model/stl"
	case OBJ:
		return "model/obj"
	}
	return "application/octet-stream"
}

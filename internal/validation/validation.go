package validation

import (
	"errors"
	"meshconv/pkg/format"
)

// Reasons returned to API clients when a request is rejected.
const (
	ReasonNoFilePart        = "No file part"
	ReasonNoSelectedFile    = "No selected file"
	ReasonTypeNotAllowed    = "File type not allowed"
	ReasonMissingFields     = "Missing file or format information"
	ReasonUnsupportedFormat = "Unsupported file format"
)

// ErrRejected matches every Rejection via errors.Is.
var ErrRejected = errors.New("request rejected")

type Rejection struct {
	Reason string
}

func (r *Rejection) Error() string {
	return r.Reason
}

func (r *Rejection) Is(target error) bool {
	return target == ErrRejected
}

func Reject(reason string) error {
	return &Rejection{Reason: reason}
}

// Gate checks client supplied names and format tokens against an allow-list of formats before anything is written
// to disk.
type Gate struct {
	allowed map[format.Format]struct{}
}

func NewGate(allowed ...format.Format) Gate {
	g := Gate{allowed: make(map[format.Format]struct{}, len(allowed))}
	for _, f := range allowed {
		g.allowed[f] = struct{}{}
	}
	return g
}

func (g Gate) Allows(f format.Format) bool {
	_, ok := g.allowed[f]
	return ok
}

// Filename validates an uploaded file name and returns the format its extension declares.
func (g Gate) Filename(fileName string) (format.Format, error) {
	if fileName == "" {
		return "", Reject(ReasonNoSelectedFile)
	}
	f, err := format.FromFilename(fileName)
	if err != nil || !g.Allows(f) {
		return "", Reject(ReasonTypeNotAllowed)
	}
	return f, nil
}

// Formats validates the declared source and target formats of an export. Each must independently be allowed.
func (g Gate) Formats(from, to string) (format.Format, format.Format, error) {
	if from == "" || to == "" {
		return "", "", Reject(ReasonMissingFields)
	}
	fromFormat, err := format.Parse(from)
	if err != nil || !g.Allows(fromFormat) {
		return "", "", Reject(ReasonUnsupportedFormat)
	}
	toFormat, err := format.Parse(to)
	if err != nil || !g.Allows(toFormat) {
		return "", "", Reject(ReasonUnsupportedFormat)
	}
	return fromFormat, toFormat, nil
}

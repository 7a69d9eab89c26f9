package model

import "meshconv/pkg/format"

// StoredFile is a file held in the storage area. Name is generated by the service and is the only handle clients
// see, Path is never exposed over the API.
type StoredFile struct {
	Name   string        `json:"name"`
	Path   string        `json:"-"`
	Format format.Format `json:"format"`
	Size   int64         `json:"size"`
}

package model

import (
	"time"
)

type ConversionStats struct {
	Load       time.Duration `json:"load"`
	Export     time.Duration `json:"export"`
	Vertices   int           `json:"vertices"`
	Faces      int           `json:"faces"`
	OutputSize int64         `json:"output_size"`
}

package server

import (
	"github.com/dustin/go-humanize"
	"meshconv/pkg/model"
)

type humanizedConversionStats struct {
	model.ConversionStats
	LoadHuman       string `json:"load_human"`
	ExportHuman     string `json:"export_human"`
	OutputSizeHuman string `json:"output_size_human"`
}

func toHumanizedConversionStats(stats model.ConversionStats) humanizedConversionStats {
	return humanizedConversionStats{
		ConversionStats: stats,
		LoadHuman:       stats.Load.String(),
		ExportHuman:     stats.Export.String(),
		OutputSizeHuman: humanize.Bytes(uint64(stats.OutputSize)),
	}
}

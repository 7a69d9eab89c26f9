package cli

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"meshconv/pkg/format"
	"meshconv/pkg/mesh"
	"meshconv/pkg/model"
	"os"
	"time"
)

type convertOpts struct {
	input      string
	output     string
	fromFormat string
	toFormat   string
}

func ConvertCommand() *cobra.Command {
	opts := convertOpts{}

	convertCmd := &cobra.Command{
		Use:     "convert",
		Example: "meshconv convert --input part.stl --output part.obj",
		Short:   "Convert a mesh file between STL and OBJ",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := ConvertMeshFile(opts.input, opts.output, opts.fromFormat, opts.toFormat)
			if err != nil {
				return err
			}
			fmt.Printf("Load time: %s\n", stats.Load)
			fmt.Printf("Export time: %s\n", stats.Export)
			fmt.Printf("Vertices: %s, faces: %s\n", humanize.Comma(int64(stats.Vertices)), humanize.Comma(int64(stats.Faces)))
			fmt.Printf("Output size: %s\n", humanize.Bytes(uint64(stats.OutputSize)))
			return nil
		},
	}

	convertCmd.Flags().StringVar(&opts.input, "input", "", "Mesh file to convert")
	convertCmd.Flags().StringVar(&opts.output, "output", "", "Path for the converted mesh")
	convertCmd.Flags().StringVar(&opts.fromFormat, "from", "", "Format of the input. Inferred from its extension when empty")
	convertCmd.Flags().StringVar(&opts.toFormat, "to", "", "Format of the output. Inferred from its extension when empty")

	MarkFlagsRequired(convertCmd, "input", "output")

	return convertCmd
}

// ConvertMeshFile converts input into output. Empty formats are taken from the file extensions.
func ConvertMeshFile(input, output, fromFormat, toFormat string) (model.ConversionStats, error) {
	var stats model.ConversionStats

	from, err := resolveFormat(fromFormat, input)
	if err != nil {
		return stats, err
	}
	to, err := resolveFormat(toFormat, output)
	if err != nil {
		return stats, err
	}

	s := NewSpinner()
	s.Prefix = "Loading mesh "
	s.Start()
	defer s.Stop()

	src, err := os.Open(input)
	if err != nil {
		return stats, err
	}
	defer src.Close()

	loadStart := time.Now()
	m, err := mesh.Decode(from, src)
	if err != nil {
		return stats, fmt.Errorf("decoding %s as %s: %w", input, from, err)
	}
	stats.Load = time.Since(loadStart)
	stats.Vertices, stats.Faces = len(m.Vertices), len(m.Faces)

	s.Prefix = "Writing converted mesh "
	exportStart := time.Now()
	if err = mesh.Export(m, output, to); err != nil {
		return stats, fmt.Errorf("exporting %s as %s: %w", output, to, err)
	}
	stats.Export = time.Since(exportStart)

	info, err := os.Stat(output)
	if err != nil {
		return stats, err
	}
	stats.OutputSize = info.Size()

	s.FinalMSG = fmt.Sprintf("Converted %s to %s\n", input, output)
	return stats, nil
}

func resolveFormat(token, path string) (format.Format, error) {
	if token != "" {
		f, err := format.Parse(token)
		if err != nil {
			return "", fmt.Errorf("%w: %q", err, token)
		}
		return f, nil
	}
	f, err := format.FromFilename(path)
	if err != nil {
		return "", fmt.Errorf("cannot infer format of %s, pass it explicitly: %w", path, err)
	}
	return f, nil
}

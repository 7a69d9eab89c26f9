package cli

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"io"
	"meshconv/pkg/mesh"
	"os"
)

func InspectCommand() *cobra.Command {
	var source, sourceFormat string

	inspectCmd := &cobra.Command{
		Use:     "inspect",
		Example: "meshconv inspect --input part.obj",
		Short:   "Print vertex and face counts and the bounding box of a mesh",
		RunE: func(cmd *cobra.Command, args []string) error {
			return InspectMeshFile(cmd.OutOrStdout(), source, sourceFormat)
		},
	}

	inspectCmd.Flags().StringVar(&source, "input", "", "Mesh file to inspect")
	inspectCmd.Flags().StringVar(&sourceFormat, "format", "", "Format of the source. Inferred from its extension when empty")
	MarkFlagsRequired(inspectCmd, "input")

	return inspectCmd
}

func InspectMeshFile(w io.Writer, source, sourceFormat string) error {
	f, err := resolveFormat(sourceFormat, source)
	if err != nil {
		return err
	}

	src, err := os.Open(source)
	if err != nil {
		return err
	}
	defer src.Close()

	m, err := mesh.Decode(f, src)
	if err != nil {
		return fmt.Errorf("decoding %s as %s: %w", source, f, err)
	}

	min, max := m.Bounds()
	fmt.Fprintf(w, "Name: %s\n", m.Name)
	fmt.Fprintf(w, "Format: %s\n", f)
	fmt.Fprintf(w, "Vertices: %s\n", humanize.Comma(int64(len(m.Vertices))))
	fmt.Fprintf(w, "Faces: %s\n", humanize.Comma(int64(len(m.Faces))))
	fmt.Fprintf(w, "Bounds: min %v, max %v\n", min, max)
	return nil
}

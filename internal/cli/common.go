package cli

import (
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"os"
	"time"
)

const spinnerRefreshRate = 100 * time.Millisecond

func MarkFlagsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}

// NewSpinner draws on stderr so command output on stdout can be piped.
func NewSpinner() *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], spinnerRefreshRate, spinner.WithWriter(os.Stderr))
}

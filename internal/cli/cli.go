package cli

import (
	"fmt"
	"github.com/spf13/cobra"
	"meshconv/internal/logging"
	"meshconv/pkg/config"
	"os"
)

type rootOpts struct {
	logLevel   string
	cpuProfile string
	memProfile string
}

func RootCommand() *cobra.Command {
	opts := rootOpts{}
	var teardown func()

	rootCmd := &cobra.Command{
		Use:          "meshconv",
		Short:        "Upload, serve and convert STL and OBJ meshes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			logging.SetLevel(level)

			teardown, err = startProfiling(opts.cpuProfile, opts.memProfile)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if teardown != nil {
				teardown()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.GetEnv(config.EnvLogLevel, "debug"), "Minimum level to log. Options are debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfile, "mem-profile", "", "Dump a heap profile into the supplied file on exit")

	rootCmd.AddCommand(ServeAppCommand(), ConvertCommand(), InspectCommand())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

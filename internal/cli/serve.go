package cli

import (
	"github.com/spf13/cobra"
	"meshconv/internal/server"
	"meshconv/pkg/config"
	"meshconv/pkg/format"
)

type serveOpts struct {
	port           string
	storageDir     string
	maxUploadSize  string
	allowedOrigins []string
	allowedFormats []string
}

func (o serveOpts) toServerConfig() (config.ServerConfig, error) {
	maxUploadSize, err := config.ParseSize(o.maxUploadSize)
	if err != nil {
		return config.ServerConfig{}, err
	}
	formats, err := config.ParseFormats(o.allowedFormats)
	if err != nil {
		return config.ServerConfig{}, err
	}
	return config.ServerConfig{
		Port:           o.port,
		StorageDir:     o.storageDir,
		MaxUploadSize:  maxUploadSize,
		AllowedOrigins: o.allowedOrigins,
		AllowedFormats: formats,
	}, nil
}

func ServeAppCommand() *cobra.Command {
	opts := serveOpts{}

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to upload, fetch and convert meshes over the web",
		Example: "meshconv serve --port 5000 --max-upload-size 32MiB",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.toServerConfig()
			if err != nil {
				return err
			}
			return server.StartServer(cfg)
		},
	}

	command.Flags().StringVar(&opts.port, "port", config.GetEnv(config.EnvPort, config.DefaultPort), "Port on which to start the server")
	command.Flags().StringVar(&opts.storageDir, "storage-dir", config.GetEnv(config.EnvStorageDir, ""), "Directory for uploaded and converted files. Defaults to a directory under the system temp dir")
	command.Flags().StringVar(&opts.maxUploadSize, "max-upload-size", config.GetEnv(config.EnvMaxUploadSize, "16MiB"), "Largest file accepted by upload and export, e.g. 16MiB or 20MB")
	command.Flags().StringSliceVar(&opts.allowedOrigins, "allowed-origins", config.GetEnvList(config.EnvAllowedOrigins, []string{"*"}), "Origins allowed by CORS, * allows any")
	command.Flags().StringSliceVar(&opts.allowedFormats, "allowed-formats", config.GetEnvList(config.EnvAllowedFormats, formatTokens()), "Mesh formats accepted by upload and export")

	return command
}

func formatTokens() []string {
	var tokens []string
	for _, f := range format.All() {
		tokens = append(tokens, f.String())
	}
	return tokens
}

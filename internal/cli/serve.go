package cli

import (
	"github.com/spf13/cobra"

	"github.com/yohoo/startpage/internal/app"
	"github.com/yohoo/startpage/internal/config"
	"github.com/yohoo/startpage/internal/logger"
)

func newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local title-fetch proxy",
		Long: `serve starts a loopback HTTP service the start page calls to resolve
link titles. Configuration comes from YOHOO_* environment variables;
--listen overrides the bind address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if listen != "" {
				cfg.ListenAddr = listen
			}

			// Verbosity flags override the env-configured level.
			level := cfg.LogLevel
			switch {
			case flagDebug:
				level = "debug"
			case flagVerbose:
				level = "info"
			case flagQuiet:
				level = "error"
			}

			return app.NewWithConfig(cfg, logger.New(level, cfg.PrettyLog)).Run()
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "bind address (default from YOHOO_LISTEN_ADDR)")

	return cmd
}

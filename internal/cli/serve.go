package cli

import (
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/spf13/cobra"

	"wordvis/internal/chart"
	"wordvis/internal/http"
	"wordvis/internal/service"
	"wordvis/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve [transcript]",
	Short: "Serve the browser dashboard",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.APIPort = port
		}
		setupLogging(cfg, os.Stdout)

		ix, err := buildIndex(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		deps := &http.Deps{
			ExplorerService: service.NewExplorerService(ix, chart.DefaultTheme()),
			IndexHTML:       web.IndexHTML,
		}
		router := http.NewRouter(deps)

		addr := ":" + cfg.APIPort
		slog.Info("Starting API server", "addr", addr)
		return nethttp.ListenAndServe(addr, router)
	},
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/backdrop/internal/server"
)

var serveFlags struct {
	dir      string
	port     int
	allowAll bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site and its wasm bundle for development",
	RunE:  serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFlags.dir, "dir", "", "site directory (default from settings)")
	serveCmd.Flags().IntVarP(&serveFlags.port, "port", "p", 0, "port to listen on (default from settings)")
	serveCmd.Flags().BoolVar(&serveFlags.allowAll, "cors-allow-all", false, "allow every CORS origin")
}

func serve(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	cfg := server.Config{Port: settings.Site.Port, Dir: settings.Site.Dir, AllowAll: serveFlags.allowAll}
	if serveFlags.dir != "" {
		cfg.Dir = serveFlags.dir
	}
	if serveFlags.port != 0 {
		cfg.Port = serveFlags.port
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

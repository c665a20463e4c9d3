package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jjenkins/resume/internal/handlers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the résumé web server",
	Long:  `Start the web server answering résumé requests over HTTP (text, JSON and HTML).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		// flag wins over PORT when given explicitly
		if !cmd.Flags().Changed("port") {
			port = a.cfg.Port
		}

		app := handlers.NewApp(a.resume, a.catalog, true)

		go func() {
			<-ctx.Done()
			a.logger.Info("shutting down")
			if err := app.Shutdown(); err != nil {
				a.logger.Error("shutdown failed", zap.Error(err))
			}
		}()

		a.logger.Info("starting server", zap.String("port", port), zap.Int("achievements", a.catalog.Len()))
		return app.Listen(":" + port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
}

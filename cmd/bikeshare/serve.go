package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go-bikeshare/internal/api"
	"go-bikeshare/internal/api/handler"
	"go-bikeshare/pkg/router"
)

var serveAddr string

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the bikeshare statistics API",
	Run: func(cmd *cobra.Command, args []string) {
		runServe(cmd)
	},
}

func init() {
	serveCommand.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command) {
	conf := loadConfig(cmd)
	if serveAddr != "" {
		conf.Addr = serveAddr
	}

	closeStore := openStore(conf)
	defer closeStore()

	r := router.New()
	api.RegisterRoutes(r, handler.NewStatsHandler(newRunner(conf), conf.PageSize))

	srv := &http.Server{Addr: conf.Addr, Handler: r.Handler()}
	go func() {
		logrus.Infof("🚀 Server started on http://%s", conf.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen error, %s", err.Error())
		}
	}()

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan
	logrus.Infof("server is shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Warn("shutdown error")
	}
}

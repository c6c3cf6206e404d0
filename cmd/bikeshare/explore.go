package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go-bikeshare/internal/shell"
)

var exploreExport bool

var exploreCommand = &cobra.Command{
	Use:   "explore",
	Short: "Explore bikeshare data interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := loadConfig(cmd)
		closeStore := openStore(conf)
		defer closeStore()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), newRunner(conf), conf.PageSize)
		if exploreExport {
			sh.ExportDir = conf.ExportDir
		}
		return sh.Run(ctx)
	},
}

func init() {
	exploreCommand.Flags().BoolVar(&exploreExport, "export", false, "Offer to export each report")
}

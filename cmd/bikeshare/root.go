package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go-bikeshare/internal/config"
	"go-bikeshare/internal/pipeline"
	"go-bikeshare/internal/store"
	"go-bikeshare/pkg/log"
)

const defaultConfigFile = "etc/config.yaml"

var (
	logLevel   string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "bikeshare explores US bikeshare trip data",
	Long: `Descriptive statistics over bikeshare trips in Chicago, New York City and Washington:
times of travel, popular stations, trip durations and user demographics.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.InitLog(logLevel)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "warn", "Log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", defaultConfigFile, "Path to config file")

	rootCmd.AddCommand(exploreCommand)
	rootCmd.AddCommand(statsCommand)
	rootCmd.AddCommand(serveCommand)
	rootCmd.AddCommand(runsCommand)
}

// loadConfig reads the config file; only an explicitly given file must exist
func loadConfig(cmd *cobra.Command) *config.Config {
	optional := !cmd.Flags().Changed("config")
	conf, err := config.InitConfig(configFile, optional)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}
	logrus.Debugf("config: %+v", conf)
	return conf
}

// openStore opens the run history database; failure only disables history
func openStore(conf *config.Config) func() {
	if conf.DB == "" {
		return func() {}
	}
	if err := store.InitDB(conf.DB); err != nil {
		logrus.WithError(err).Warn("run history disabled")
		return func() {}
	}
	return func() {
		if err := store.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close run history")
		}
	}
}

func newRunner(conf *config.Config) *pipeline.Runner {
	return pipeline.NewRunner(pipeline.NewLoader(conf.DataDir, conf.Sources()))
}

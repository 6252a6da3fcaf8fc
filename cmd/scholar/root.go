package main

import (
	"fmt"
	"net/http"
	"path"

	"github.com/spf13/cobra"

	"github.com/sirius-scholar/scholar/clients/api"
	"github.com/sirius-scholar/scholar/log"
)

var (
	// flags
	env        string
	configFile string

	// logger
	logger log.Logger

	cfg Configuration
)

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")

	RootCmd.AddCommand(&ServeCmd, &UsersCmd, &HIndexCmd)
}

var RootCmd = cobra.Command{
	Use:           "scholar",
	Short:         "Sirius Scholar, the researcher directory",
	Long:          "Sirius Scholar, the researcher directory",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = log.New(env)

		if configFile == "" {
			configFile = path.Join("configuration", fmt.Sprintf("config.%s.toml", env))
		}

		var err error
		cfg, err = loadConfiguration(configFile)
		return err
	},
}

func newAPIClient() (*api.Client, error) {
	return api.NewClient(
		&http.Client{},
		cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger.WithField("component", "api")),
	)
}

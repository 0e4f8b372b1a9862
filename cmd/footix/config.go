package main

import (
	"fmt"

	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/pkg/env"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as .env lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadEnv(config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}
		logCfg, err := config.LoadLogConfig()
		if err != nil {
			return err
		}
		httpCfg := &config.HTTPConfig{}
		if appCfg.EnableHTTP {
			httpCfg = config.NewHTTPConfig(cmd.Context())
			if httpCfg.AuthToken != "" {
				httpCfg.AuthToken = "********"
			}
		}

		out, err := env.MarshalEnv(appCfg, logCfg, httpCfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

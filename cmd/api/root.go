package main

import (
	"github.com/spf13/cobra"

	"go-chi-calculator/internal/config"
)

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "calculator",
		Short: "HTTP calculator service",
		Long: `calculator serves POST /calculate (add, subtract, multiply, divide on two
numbers), a small web front-end, a health check and Prometheus metrics.

Settings come from flags, environment variables (HTTP_ADDR, LOG_LEVEL, ...),
an optional .env file and an optional config file, in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadDotEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a config file (yaml, toml or json)")
	flags.String("addr", "", "HTTP listen address")
	flags.String("log-level", "", "minimum log level (debug, info, warn, error)")
	flags.String("log-dir", "", "directory for rotated app.log and error.log")
	flags.Bool("otel", false, "export traces and metrics over OTLP/HTTP")

	_ = v.BindPFlag(config.KeyHTTPAddr, flags.Lookup("addr"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogDir, flags.Lookup("log-dir"))
	_ = v.BindPFlag(config.KeyOTelEnabled, flags.Lookup("otel"))

	return cmd
}

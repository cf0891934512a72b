package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/skhanzad/libralite/libralite/app"
	"github.com/skhanzad/libralite/libralite/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

type flags struct {
	logLevel     string
	writeTimeout time.Duration
	retention    time.Duration
}

func (f *flags) options() ([]config.Option, error) {
	var opts []config.Option
	if f.logLevel != "" {
		level, err := zapcore.ParseLevel(f.logLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithLogLevel(level))
	}
	if f.writeTimeout > 0 {
		opts = append(opts, config.WithWriteTimeout(f.writeTimeout))
	}
	if f.retention > 0 {
		opts = append(opts, config.WithHoldShelfRetention(f.retention))
	}
	return opts, nil
}

func (f *flags) config() (*config.Config, error) {
	opts, err := f.options()
	if err != nil {
		return nil, err
	}
	return config.NewConfig(opts...), nil
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "libralite",
		Short:         "Library membership and circulation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")
	root.PersistentFlags().DurationVar(&f.retention, "hold-shelf-retention", 0, "override HOLD_SHELF_RETENTION")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.config()
			if err != nil {
				return err
			}
			app.Run(cfg)
			return nil
		},
	}
	serve.Flags().DurationVar(&f.writeTimeout, "write-timeout", 0, "override HTTP_WRITE")

	notifier := &cobra.Command{
		Use:   "notifier",
		Short: "Consume hold-ready events and notify members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.config()
			if err != nil {
				return err
			}
			app.RunNotifier(cfg)
			return nil
		},
	}

	expire := &cobra.Command{
		Use:   "expire-holds",
		Short: "Expire hold shelf entries past their pickup window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.config()
			if err != nil {
				return err
			}
			return app.ExpireHolds(cmd.Context(), cfg)
		},
	}

	root.AddCommand(serve, notifier, expire)
	return root
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		stdLog.Fatal(err)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/gocircum/dynproxy"
	"github.com/gocircum/dynproxy/core/config"
	"github.com/gocircum/dynproxy/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	configFile string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "dynproxy",
		Short:         "Dynamic proxy demonstration",
		Long:          `dynproxy wraps a Person in an interception proxy that prints markers around every forwarded call.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to a YAML config file (defaults to the built-in demo values)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format (console, json)")

	rootCmd.AddCommand(newDemoCmd(opts), newInvokeCmd(opts), newMethodsCmd(opts))
	return rootCmd
}

// setup loads the config, applies flag overrides and builds the demo.
func (o *rootOptions) setup(cmd *cobra.Command) (*dynproxy.Demo, error) {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		cfg, err = config.LoadFileConfig(o.configFile)
		if err != nil {
			return nil, err
		}
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}

	if err := logging.InitLogger(cfg.Logging.Level, cfg.Logging.Format, zapcore.AddSync(cmd.ErrOrStderr())); err != nil {
		return nil, err
	}
	return dynproxy.NewDemo(cfg, cmd.OutOrStdout(), logging.GetLogger())
}

func newDemoCmd(opts *rootOptions) *cobra.Command {
	var showMetrics bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the full proxy demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			demo, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			demo.Run()
			if showMetrics {
				fmt.Fprintln(cmd.OutOrStdout(), "\n--- METRICS ---")
				return demo.WriteMetrics(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print invocation counters after the demo")
	return cmd
}

func newInvokeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <method> [args...]",
		Short: "Forward a single call through the proxy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			demo, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			result, err := demo.Invoke(args[0], args[1:]...)
			if err != nil {
				return err
			}
			for _, v := range result {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}

func newMethodsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the operations the proxy forwards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			demo, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			for _, m := range demo.Methods() {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}

func init() {
	// Keep library logs off stdout before flags are parsed.
	if os.Getenv("LOG_LEVEL") == "" {
		_ = logging.InitLogger("warn", "console", zapcore.AddSync(os.Stderr))
	}
}

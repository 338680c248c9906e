package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/astrostay/internal/ui"
)

// clock is the wall clock every command reads "today" from.
var clock = time.Now

var rootCmd = &cobra.Command{
	Use:   "astrostay",
	Short: "Book a stay at a space resort",
	Long: `AstroStay is a terminal booking desk for stays on the Moon, on Mars and in
orbit. Without a subcommand it opens the interactive booking terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(tuiCmd, args)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.New().Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .astrostay.yaml)")
	pf.String("catalog", "", "destination catalog override (TOML)")
	pf.String("log-file", "", "write logs to this file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "json", "log encoding: json or console")
	pf.String("telemetry", "", "append JSONL session events to this file")

	_ = viper.BindPFlag("catalog_path", pf.Lookup("catalog"))
	_ = viper.BindPFlag("log_file", pf.Lookup("log-file"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("log_format", pf.Lookup("log-format"))
	_ = viper.BindPFlag("telemetry_path", pf.Lookup("telemetry"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".astrostay")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ASTROSTAY")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

package cmd

import (
	"os"

	"github.com/joshyorko/cratebom/common"
	"github.com/joshyorko/cratebom/pretty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile      string
	debugFlag       bool
	traceFlag       bool
	silentFlag      bool
	directoryOption string
)

var rootCmd = &cobra.Command{
	Use:   "cratebom",
	Short: "SPDX 2.2 documents straight from cargo builds.",
	Long: `cratebom wraps cargo and turns what actually got compiled into
SPDX 2.2 software bill of materials documents. The build subcommand
follows the compiler artifact stream and writes one document per
produced binary; the describe subcommand documents the root crate
without building anything.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		pretty.Setup()
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pretty.Exit(1, "Error: %v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file to use (default is .cratebom.yaml in cwd or $HOME).")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Turn on debugging output.")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "Turn on tracing output.")
	rootCmd.PersistentFlags().BoolVar(&silentFlag, "silent", false, "Be less verbose on output.")
	rootCmd.PersistentFlags().StringVar(&directoryOption, "directory", "", "Cargo project directory to work in (default is cwd).")

	rootCmd.PersistentFlags().String("host-url", "", "Absolute URL namespace prefix for produced documents.")
	rootCmd.PersistentFlags().StringP("format", "f", "kv", "Document format: kv, json or yaml.")
	rootCmd.PersistentFlags().String("cargo", "", "Cargo command to run (default is $CARGO or plain cargo).")
	viper.BindPFlag("host-url", rootCmd.PersistentFlags().Lookup("host-url"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("cargo", rootCmd.PersistentFlags().Lookup("cargo"))
}

func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".cratebom")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	viper.SetEnvPrefix("CRATEBOM")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		common.Debug("Using config file %q.", viper.ConfigFileUsed())
	}
}

// projectDirectory resolves the cargo project to work in.
func projectDirectory() string {
	if directoryOption != "" {
		return directoryOption
	}
	directory, err := os.Getwd()
	pretty.Guard(err == nil, 1, "Cannot resolve working directory: %v", err)
	return directory
}

package cmd

import (
	"github.com/joshyorko/cratebom/cargo"
	"github.com/joshyorko/cratebom/common"
	"github.com/joshyorko/cratebom/pretty"
	"github.com/joshyorko/cratebom/spdx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var buildCmd = &cobra.Command{
	Use:   "build [-- cargo build arguments]",
	Short: "Wrap a cargo build and document every produced binary.",
	Long: `Build runs cargo build with json messages, correlates every
compiler artifact back to its crate and source files, and writes one
document next to each produced binary. Everything after "--" is
forwarded to cargo build untouched.

Examples:
  cratebom build --host-url https://sbom.example.com/team
  cratebom build -f json -- --release --target x86_64-unknown-linux-musl`,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Build command lasted").Report()
		}
		format, err := spdx.ParseFormat(viper.GetString("format"))
		pretty.Guard(err == nil, 2, "Error: %v", err)
		hostURL := viper.GetString("host-url")
		pretty.Guard(hostURL != "", 2, "A document namespace is required, give one with --host-url.")
		err = cargo.Build(projectDirectory(), viper.GetString("cargo"), args, hostURL, format)
		pretty.Guard(err == nil, 3, "Build wrapping failed: %v", err)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

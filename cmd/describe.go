package cmd

import (
	"github.com/joshyorko/cratebom/cargo"
	"github.com/joshyorko/cratebom/common"
	"github.com/joshyorko/cratebom/pretty"
	"github.com/joshyorko/cratebom/spdx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	describeOutput string
	describeForce  bool
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Document the root crate without building it.",
	Long: `Describe writes a document for the project's root crate from the
dependency graph alone. Nothing is compiled and no source files are
inventoried, so this is quick and safe to run anywhere.`,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Describe command lasted").Report()
		}
		format, err := spdx.ParseFormat(viper.GetString("format"))
		pretty.Guard(err == nil, 2, "Error: %v", err)
		hostURL := viper.GetString("host-url")
		pretty.Guard(hostURL != "", 2, "A document namespace is required, give one with --host-url.")
		err = cargo.Describe(projectDirectory(), viper.GetString("cargo"), hostURL, describeOutput, describeForce, format)
		pretty.Guard(err == nil, 3, "Describing failed: %v", err)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringVarP(&describeOutput, "output", "o", "", "Where to write the document (default is <crate name> plus the format extension).")
	describeCmd.Flags().BoolVar(&describeForce, "force", false, "Overwrite an existing output file.")
}

// Command bindgen generates guest bindings from resolved WIT documents.
//
//	bindgen check api.wit.json
//	bindgen guest typescript api.wit.json --out-dir src/bindings --prettier
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "bindgen",
	Short:         "Generate guest bindings for WIT interfaces",
	Long:          "bindgen reads WIT documents in JSON form (wasm-tools component wit --json) and emits guest bindings.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(guestCmd)

	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(rootCmd, err))
		os.Exit(1)
	}
}

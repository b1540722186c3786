package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "hexlit",
	Short:         "Build-time hex literals for Go",
	SilenceErrors: true,
	SilenceUsage:  true,
	Long: `hexlit turns hex text into fixed-size [N]byte declarations at build time.

Annotate a package with //hexlit:bytes directives and run the generator
(usually via go:generate); invalid hex aborts the run before the program
is built:

  //go:generate hexlit gen
  //hexlit:bytes AESKey = "0x603deb10 15ca71be 2b73aef0 857d7781"
  //hexlit:bytes IV = 1a 0b 0c 0d

Example usage:
  hexlit gen ./pkg/keys
  hexlit gen --check ./pkg/keys    (in CI, fail on drift)
  hexlit decode 0xdeadbeef`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

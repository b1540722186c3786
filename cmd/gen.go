package cmd

import (
	"fmt"
	"io"

	"github.com/inspier/hexlit/pkg/gen"
	"github.com/spf13/cobra"
)

var (
	// gen flags
	genOutput string
	genCheck  bool
)

var genCmd = &cobra.Command{
	Use:   "gen [path ...]",
	Short: "Generate [N]byte declarations from //hexlit:bytes directives",
	Long: `Scan the named package directories (default ".") for //hexlit:bytes
directives and write one generated file per package declaring a
fixed-size [N]byte array for each directive. The array length is half the
directive's hex digit count, so it is part of the declaration's type.

Any invalid digit or odd digit count aborts the run with the directive's
file:line and leaves the existing generated file untouched.

With --check, nothing is written; the command fails if a generated file
is missing, out of date, or stale, which makes drift break the build.

Examples:
  hexlit gen
  hexlit gen ./pkg/keys ./pkg/certs
  hexlit gen --check ./pkg/keys`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs := args
		if len(dirs) == 0 {
			dirs = []string{"."}
		}
		for _, dir := range dirs {
			if err := runGen(cmd.OutOrStdout(), dir, genOutput, genCheck); err != nil {
				return err
			}
		}
		return nil
	},
}

// runGen generates or checks a single package directory.
func runGen(w io.Writer, dir, output string, check bool) error {
	if check {
		return gen.Check(dir, output)
	}
	path, err := gen.Generate(dir, output)
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(w, "wrote %s\n", path)
	}
	return nil
}

func init() {
	genCmd.Flags().StringVarP(&genOutput, "output", "o", gen.DefaultOutput, "Name of the generated file written into each package")
	genCmd.Flags().BoolVar(&genCheck, "check", false, "Verify generated files are up to date instead of writing")
	rootCmd.AddCommand(genCmd)
}

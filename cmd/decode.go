package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/inspier/hexlit/pkg/gen"
	"github.com/inspier/hexlit/pkg/hexlit"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var decodeFormat string

var decodeCmd = &cobra.Command{
	Use:   "decode <input ...>",
	Short: "Decode hex text and print the result",
	Long: `Decode hex text on the command line, mainly for checking what a
directive would produce. A single argument is treated like the quoted
directive form (0x prefix and separators allowed); multiple arguments are
treated as bare tokens (no 0x prefix).

Output formats:
  hex  lowercase hex, one line (default)
  go   a Go [N]byte array literal, as the generator would emit it
  raw  the raw bytes (refused when stdout is a terminal)

Examples:
  hexlit decode 0xDEADBEEF
  hexlit decode "01 02|03|04" --format go
  hexlit decode 1a 0b 0c 0d --format raw > out.bin`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if len(args) == 1 {
			data, err = hexlit.Decode(args[0])
		} else {
			data, err = hexlit.DecodeTokens(args...)
		}
		if err != nil {
			return err
		}
		return writeDecoded(cmd.OutOrStdout(), data, decodeFormat)
	},
}

// writeDecoded renders data to w in the requested format.
func writeDecoded(w io.Writer, data []byte, format string) error {
	switch format {
	case "hex":
		_, err := fmt.Fprintf(w, "%x\n", data)
		return err
	case "go":
		_, err := fmt.Fprintln(w, gen.ArrayLiteral(data))
		return err
	case "raw":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return fmt.Errorf("refusing to write raw bytes to a terminal; redirect output or use --format hex")
		}
		_, err := w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (want hex, go, or raw)", format)
	}
}

func init() {
	decodeCmd.Flags().StringVar(&decodeFormat, "format", "hex", "Output format: hex, go, or raw")
	rootCmd.AddCommand(decodeCmd)
}

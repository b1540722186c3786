// hexlit generates fixed-size [N]byte declarations from hex text in
// //hexlit:bytes directives, moving hex-format errors from runtime to
// build time.
//
// It is meant to be driven by go:generate, and also offers a decode
// command for inspecting inputs by hand.
package main

import (
	"github.com/inspier/hexlit/cmd"
)

func main() {
	cmd.Execute()
}

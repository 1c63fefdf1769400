// Command xgxdump hex-dumps files and generated arrays through
// fixed-capacity xgx-meta buffers.
package main

import "github.com/xgx-io/xgx-meta/internal/cli"

func main() {
	cli.Execute()
}

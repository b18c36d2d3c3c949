// Command sakurasum prints Keccak-based digests of files.
//
// Usage:
//
//	sakurasum [flags] [FILE...]
//
// With no FILE, or when FILE is -, sakurasum reads standard input. Every flag may also be set in a YAML or TOML
// config file (--config) or in the environment with the SAKURASUM_ prefix, e.g. SAKURASUM_ALGORITHM=kt128.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// Command huddlectl queries a seed dataset offline and pushes it to a store.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Command erptk automates translation-catalog chores for a modular ERP
// codebase: creating, updating and merging gettext PO catalogs per
// module, and maintaining the translation platform's configuration.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stderr)
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "erptk: %v\n", err)
		os.Exit(1)
	}
}

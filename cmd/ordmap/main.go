package main

import (
	"os"

	"github.com/go-arcade/ordered/pkg/log"
)

/**
 * @file: main.go
 * @description: ordmap command line tool
 */

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Errorw("ordmap failed", "error", err)
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

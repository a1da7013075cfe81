// Package cmd implements the bvhtrace command-line subcommands.
package cmd

import (
	"github.com/urfave/cli"

	"github.com/polaris-render/bvhtrace/log"
)

var logger = log.New("bvhtrace")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

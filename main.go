// Package main is the entry point for the youngoor application.
package main

import (
	"github.com/samber/lo"
	"github.com/youngoor/youngoor/cmd"
	"github.com/youngoor/youngoor/config"
	"github.com/youngoor/youngoor/log"
	"github.com/youngoor/youngoor/network"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	network.Setup()

	cmd.Execute()
}

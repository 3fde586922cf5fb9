package main

import (
	"github.com/ardentik/gramblast/cmd"
)

func main() {
	// The MTProto client implementation is registered here in deployments;
	// see telegram.Dialer.
	cmd.Execute()
}

package main

import (
	"github.com/bornholm/traitkit/internal/command"
	"github.com/bornholm/traitkit/internal/command/generics"
	"github.com/bornholm/traitkit/internal/command/largest"
	"github.com/bornholm/traitkit/internal/command/longest"
	"github.com/bornholm/traitkit/internal/command/traits"
)

func main() {
	command.Main(
		"traitkit", "explore generic pairs, capability dispatch and borrowed string selection",
		generics.Command(),
		traits.Command(),
		largest.Command(),
		longest.Command(),
	)
}

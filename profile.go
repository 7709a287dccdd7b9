package main

import (
	"github.com/pkg/profile"
)

func ProfileStart() func() {
	return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop
}

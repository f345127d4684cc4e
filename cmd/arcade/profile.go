package main

import (
	"fmt"

	"github.com/pkg/profile"
)

// startProfile starts the --profile capture. The returned stop func writes
// the profile into the current directory.
func startProfile(kind string) (func(), error) {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfileAllocs
	case "trace":
		mode = profile.TraceProfile
	default:
		return nil, fmt.Errorf("unknown profile %q (want cpu, mem or trace)", kind)
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	return p.Stop, nil
}

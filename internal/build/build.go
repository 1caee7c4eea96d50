package build

import "fmt"

var (
	Version     = "dev"
	GitRef      = "unknown"
	BuildDate   = "unknown"
	LongVersion = fmt.Sprintf("%s (%s, %s)", Version, GitRef, BuildDate)
)

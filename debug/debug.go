// Package debug gates diagnostic logging behind JV_DEBUG_* environment
// variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Path  bool
	Stats bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JV_DEBUG_PARSE")
	d.Path = boolEnv("JV_DEBUG_PATH")
	d.Stats = boolEnv("JV_DEBUG_STATS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Path() bool {
	return d.Path
}
func Stats() bool {
	return d.Stats
}

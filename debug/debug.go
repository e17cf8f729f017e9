package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Walk  bool
	Merge bool
	Diff  bool
	Op    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("COTREE_DEBUG_WALK")
	d.Merge = boolEnv("COTREE_DEBUG_MERGE")
	d.Diff = boolEnv("COTREE_DEBUG_DIFF")
	d.Op = boolEnv("COTREE_DEBUG_OP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Merge() bool {
	return d.Merge
}
func Diff() bool {
	return d.Diff
}
func Op() bool {
	return d.Op
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

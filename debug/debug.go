package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Token bool
	Parse bool
	Match bool
	Patch bool
	Plan  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Token = boolEnv("PSL_DEBUG_TOKEN")
	d.Parse = boolEnv("PSL_DEBUG_PARSE")
	d.Match = boolEnv("PSL_DEBUG_MATCH")
	d.Patch = boolEnv("PSL_DEBUG_PATCH")
	d.Plan = boolEnv("PSL_DEBUG_PLAN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Token() bool {
	return d.Token
}
func Parse() bool {
	return d.Parse
}
func Match() bool {
	return d.Match
}
func Patch() bool {
	return d.Patch
}
func Plan() bool {
	return d.Plan
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}

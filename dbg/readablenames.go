package dbg

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts cell indices into short readable names for plot labels and
// verbose output. The numeric suffix keeps the name traceable back to the
// cell; the adjective just makes neighbors easy to tell apart at a glance.
// Names are memoized, and petname's default deterministic mode is left
// alone so labels are stable within a run.

var memo map[int]string

func init() {
	memo = make(map[int]string)
}

func Name(index int) string {
	if r, ok := memo[index]; ok {
		return r
	}
	r := fmt.Sprintf("%s-%d", petname.Adjective(), index)
	memo[index] = r
	return r
}

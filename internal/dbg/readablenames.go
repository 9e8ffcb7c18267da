package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// This converts arbitrary keys into random readable names, generated lazily and
// memoized for the life of the process. Oils read without a name get one of
// these so that recipes stay legible.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

// Key must be comparable.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// Generated names are shown in cyan so they aren't mistaken for real ones.
func Colored(name string, generated bool) string {
	if generated {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}

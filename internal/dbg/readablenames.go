package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable keys into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a
// problem unless debug tracing is on. Loops and edges are identified by long
// coordinate strings, and a name like "BriskFalcon" is much easier to follow
// through a trace.

var (
	memo  map[interface{}]string
	mutex sync.Mutex
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(key); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	mutex.Lock()
	defer mutex.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// +build debug

package assertion

import "fmt"

// Debug reports whether this build has assertions compiled in.
const Debug = true

// Assert panics with the formatted message if cond is false.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic("assertion failed: " + fmt.Sprintf(format, args...))
	}
}

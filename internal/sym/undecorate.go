package sym

import (
	"github.com/ianlancetaylor/demangle"
)

// completeOptions keeps parameters and template arguments in the demangled
// output, dropping only clone suffixes.
var completeOptions = []demangle.Option{demangle.NoClones}

// undecorate demangles a decorated C++ name at complete verbosity. Reports
// false when the name is not a mangled name or demangling fails.
func undecorate(name string) (string, bool) {
	out, err := demangle.ToString(name, completeOptions...)
	if err != nil {
		return "", false
	}
	return out, true
}

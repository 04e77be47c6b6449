package host

import "fmt"

// FormatError renders a parameterized error message and interns the
// result, mirroring the "format_error(line, kind, varargs) -> string"
// capability the host interface exposes to the scanner and parser. The
// line number is accepted for parity with that contract even though the
// returned string does not embed it — callers attach position information
// via the surrounding diagnostic's span instead of baking it into text.
func (in *Interner) FormatError(line int, format string, args ...any) *InternedString {
	return in.Intern(fmt.Sprintf(format, args...))
}

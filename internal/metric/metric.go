// Package metric compiles the CLI's severity-metric expression — a small
// arithmetic language over two free variables, repeat count `c` and
// repeat length `l` — into a pure Go function usable both as the
// extractor's inclusion cutoff and as the reporter's sort key.
//
// No parser-combinator or expression-evaluator library appears anywhere
// in the retrieved example pack, so this is a small hand-rolled recursive
// descent parser over the fixed, tiny grammar the spec allows — standard
// library only, justified in DESIGN.md.
package metric

import (
	"errors"
	"fmt"
	"strings"

	"curgo/internal/suffixtrie"
)

// Default is the severity expression used when the CLI's --metric flag is
// not given: one instance of the duplicated code survives, one line is
// assumed to be replaced by a call, and two lines of overhead are assumed
// for the call's signature and closing brace.
const Default = "(c-1)*(l-1)-2"

// allowedChars is the full character set a metric expression may use.
const allowedChars = " \t\r\n0123456789cl%^*()-+/"

// ErrInvalidMetric is returned when an expression contains a disallowed
// character or cannot be parsed.
var ErrInvalidMetric = errors.New("invalid metric expression")

// Compile validates and compiles expr into a suffixtrie.CutoffMetric. It
// returns ErrInvalidMetric, wrapped with the offending detail, if expr
// contains a character outside the allowed set or fails to parse.
func Compile(expr string) (suffixtrie.CutoffMetric, error) {
	for _, r := range expr {
		if !strings.ContainsRune(allowedChars, r) {
			return nil, fmt.Errorf("%w: disallowed character %q in %q", ErrInvalidMetric, r, expr)
		}
	}

	p := &parser{toks: lex(expr)}
	node, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetric, err)
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("%w: unexpected trailing input at %q", ErrInvalidMetric, p.remainder())
	}

	return func(c, l int) int {
		return node.eval(c, l)
	}, nil
}

// MustCompile is Compile, panicking on error. It exists for wiring a
// compile-time-known default expression without threading an error return
// through callers that know it cannot fail.
func MustCompile(expr string) suffixtrie.CutoffMetric {
	m, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return m
}

package uri

import (
	"regexp"

	"braces.dev/errtrace"

	"github.com/urikit/uri/internal/constraints"
	"github.com/urikit/uri/internal/grammar"
)

// uriPattern splits a URI into scheme, authority, path, query and fragment.
// It is total: every input matches, the empty string included.
var uriPattern = regexp.MustCompile(`^(([^:/?#]+?):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?`)

// Parse parses a URI from the given input s (string or []byte).
//
// Splitting performs minimal validation only. Each of authority, path,
// query and fragment is percent-decoded individually; malformed escape
// sequences degrade to literal text instead of failing the parse. Without
// [WithStrict] an absent scheme becomes "file" and no invariants are
// checked; with it the scheme and path/authority invariants are enforced.
func Parse[T constraints.Byteseq](s T, opts ...Option) (*URI, error) {
	cfg := newConfig(opts)

	m := uriPattern.FindStringSubmatch(string(s))
	if m == nil {
		return errtrace.Wrap2(newURI(Components{}, cfg.strict))
	}
	return errtrace.Wrap2(newURI(Components{
		Scheme:    m[2],
		Authority: grammar.Unescape(m[4]),
		Path:      grammar.Unescape(m[5]),
		Query:     grammar.Unescape(m[7]),
		Fragment:  grammar.Unescape(m[9]),
	}, cfg.strict))
}

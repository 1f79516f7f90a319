package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/urikit/uri/internal/errorutil"
	"github.com/urikit/uri/internal/grammar"
)

// Built-in schemes with reference-resolution semantics.
const (
	SchemeFile  = "file"
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// Components is the five-field structural representation of a URI.
// Absent components are empty strings, never a separate missing marker.
type Components struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

// From constructs a URI from components, always enforcing the scheme and
// path/authority invariants.
func From(c Components) (*URI, error) {
	return errtrace.Wrap2(newURI(c, true))
}

// newURI is the single construction path: the scheme fixup and reference
// resolution always apply, the invariants only under strict.
func newURI(c Components, strict bool) (*URI, error) {
	c.Scheme = fixScheme(c.Scheme, strict)
	c.Path = resolvePath(c.Scheme, c.Path)
	if err := validate(c, strict); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &URI{c: c}, nil
}

// mustURI constructs without validation. Internal derivation paths (With,
// File, JoinPath, Revive) trust that values entered the system through a
// validating constructor once.
func mustURI(c Components) *URI {
	u, _ := newURI(c, false)
	return u
}

// fixScheme rewrites an empty scheme to "file" unless strict construction
// was requested. Historical identifiers were written without a scheme; the
// rewrite keeps them parseable.
func fixScheme(scheme string, strict bool) string {
	if scheme == "" && !strict {
		return SchemeFile
	}
	return scheme
}

// resolvePath forces a root path for the three schemes that always have an
// implicit root, approximating RFC 3986 section 5.1.4 default-base
// resolution. All other schemes pass their path through unchanged.
func resolvePath(scheme, path string) string {
	switch scheme {
	case SchemeHTTP, SchemeHTTPS, SchemeFile:
		if path == "" {
			return "/"
		}
		if path[0] != '/' {
			return "/" + path
		}
	}
	return path
}

// validate checks the structural invariants. Non-strict validation performs
// no checks at all.
func validate(c Components, strict bool) error {
	if !strict {
		return nil
	}
	if c.Scheme == "" {
		return errtrace.Wrap(ErrMissingScheme)
	}
	if !grammar.IsSchemeName(c.Scheme) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, "%q", c.Scheme))
	}
	if c.Path != "" {
		if c.Authority != "" {
			if !singleSlashStart(c.Path) {
				return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPathAuthority,
					"path %q must be empty or start with a single slash when an authority is present", c.Path))
			}
		} else if strings.HasPrefix(c.Path, "//") {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPathAuthority,
				"path %q must not start with a double slash when no authority is present", c.Path))
		}
	}
	return nil
}

func singleSlashStart(path string) bool {
	return path[0] == '/' && (len(path) == 1 || path[1] != '/')
}

package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/urikit/uri/internal/stringutils"
)

// URI is an immutable five-component URI value. The zero value is not
// useful; construct through [Parse], [From], [File] or derive with
// [URI.With] and [URI.JoinPath].
type URI struct {
	c Components
}

// Scheme returns the scheme component.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.c.Scheme
}

// Authority returns the authority component ("user:pass@host:port" shape).
func (u *URI) Authority() string {
	if u == nil {
		return ""
	}
	return u.c.Authority
}

// Path returns the path component.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.c.Path
}

// Query returns the query component.
func (u *URI) Query() string {
	if u == nil {
		return ""
	}
	return u.c.Query
}

// Fragment returns the fragment component.
func (u *URI) Fragment() string {
	if u == nil {
		return ""
	}
	return u.c.Fragment
}

// Components returns a copy of the component tuple.
func (u *URI) Components() Components {
	if u == nil {
		return Components{}
	}
	return u.c
}

// Change describes a single field of a partial change set applied by
// [URI.With]. An empty string value clears the field; omitted fields keep
// their current value.
type Change func(*Components)

// SetScheme replaces the scheme component.
func SetScheme(s string) Change { return func(c *Components) { c.Scheme = s } }

// SetAuthority replaces the authority component.
func SetAuthority(s string) Change { return func(c *Components) { c.Authority = s } }

// SetPath replaces the path component.
func SetPath(s string) Change { return func(c *Components) { c.Path = s } }

// SetQuery replaces the query component.
func SetQuery(s string) Change { return func(c *Components) { c.Query = s } }

// SetFragment replaces the fragment component.
func SetFragment(s string) Change { return func(c *Components) { c.Fragment = s } }

// With derives a new URI from u with the given changes applied. When every
// field resolves to its current value the same instance is returned, so
// callers may use pointer identity for cheap no-op detection. With never
// re-runs strict validation.
func (u *URI) With(changes ...Change) *URI {
	if u == nil {
		return nil
	}
	c := u.c
	for _, change := range changes {
		if change != nil {
			change(&c)
		}
	}
	if c == u.c {
		return u
	}
	return mustURI(c)
}

// Clone returns a copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// Equal compares this URI with another for field-wise equality. No
// normalization happens at comparison time beyond what construction already
// performed.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	case *Cached:
		if v == nil {
			other = nil
		} else {
			other = v.URI
		}
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.c == other.c
}

// RenderTo writes the externalized form of the URI to w.
func (u *URI) RenderTo(w io.Writer, opts ...Option) error {
	if u == nil {
		return nil
	}
	_, err := io.WriteString(w, u.Render(opts...))
	return errtrace.Wrap(err)
}

// Render returns the externalized form of the URI. This is the only form
// safe to persist, log or transmit.
func (u *URI) Render(opts ...Option) string {
	if u == nil {
		return ""
	}
	sb := stringutils.NewStrBldr()
	defer stringutils.FreeStrBldr(sb)
	u.render(sb, newConfig(opts).skipEncoding)
	return sb.String()
}

// String returns the fully encoded externalized form of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.Render()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

package uri

import (
	"encoding/json"
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/urikit/uri/internal/errorutil"
	"github.com/urikit/uri/platform"
)

// PayloadMID is the wire discriminator marking a payload as a URI.
const PayloadMID = 1

// winSepMarker tags a wire payload whose cached filesystem path was
// produced on a windows-like platform.
const winSepMarker = 1

// Cached wraps a URI with write-once memoization of its two expensive
// derived representations: the externalized string and the native
// filesystem path. The caches are pure functions of the component tuple
// and are never invalidated; derivation always produces a new instance.
//
// Concurrent first access may compute a cache twice; both writes store the
// identical value, so readers always observe a consistent result.
type Cached struct {
	*URI

	p        platform.Platform
	external atomic.Pointer[string]
	fsPath   atomic.Pointer[string]
}

// NewCached wraps u with empty caches. The platform used for the
// filesystem-path cache is fixed at construction.
func NewCached(u *URI, opts ...Option) *Cached {
	return &Cached{URI: u, p: newConfig(opts).platform}
}

func (c *Cached) plat() platform.Platform {
	if c.p != nil {
		return c.p
	}
	return platform.Native
}

// String returns the fully encoded externalized form, computing it on
// first access.
func (c *Cached) String() string {
	if c == nil {
		return ""
	}
	if s := c.external.Load(); s != nil {
		return *s
	}
	s := c.URI.String()
	c.external.Store(&s)
	return s
}

// FSPath returns the native filesystem path, computing it on first access
// with the construction-time platform and lowercased drive letters.
func (c *Cached) FSPath() string {
	if c == nil {
		return ""
	}
	if s := c.fsPath.Load(); s != nil {
		return *s
	}
	s := c.URI.fsPath(c.plat(), false)
	c.fsPath.Store(&s)
	return s
}

// Payload is the wire representation of a cached URI. Empty component
// fields are omitted entirely. External and FSPath carry the memoized
// derived values when they were computed before marshalling; Sep marks a
// windows-produced FSPath so a receiver on another platform family knows
// not to trust its separators.
type Payload struct {
	MID       int    `json:"$mid"`
	Scheme    string `json:"scheme,omitempty"`
	Authority string `json:"authority,omitempty"`
	Path      string `json:"path,omitempty"`
	Query     string `json:"query,omitempty"`
	Fragment  string `json:"fragment,omitempty"`
	External  string `json:"external,omitempty"`
	FSPath    string `json:"fsPath,omitempty"`
	Sep       int    `json:"_sep,omitempty"`
}

// Payload projects the cached URI onto its wire representation. Caches are
// read without being populated: only values computed before the call are
// transmitted.
func (c *Cached) Payload() Payload {
	if c == nil {
		return Payload{MID: PayloadMID}
	}
	p := Payload{
		MID:       PayloadMID,
		Scheme:    c.Scheme(),
		Authority: c.Authority(),
		Path:      c.Path(),
		Query:     c.Query(),
		Fragment:  c.Fragment(),
	}
	if s := c.external.Load(); s != nil {
		p.External = *s
	}
	if s := c.fsPath.Load(); s != nil {
		p.FSPath = *s
		if c.plat().IsWindows() {
			p.Sep = winSepMarker
		}
	}
	return p
}

// MarshalJSON implements [json.Marshaler] using the wire payload shape.
func (c *Cached) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(c.Payload()))
}

// UnmarshalJSON implements [json.Unmarshaler], restoring transmitted
// caches without recomputation.
func (c *Cached) UnmarshalJSON(data []byte) error {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPayload, err))
	}
	c2 := revivePayload(p, newConfig(nil))
	c.URI = c2.URI
	c.p = c2.p
	c.external.Store(c2.external.Load())
	c.fsPath.Store(c2.fsPath.Load())
	return nil
}

// Revive reconstructs a cached URI from a value crossing a process
// boundary. An already-constructed *Cached is returned unchanged, a *URI
// is wrapped with empty caches, a [Payload] or its JSON encoding is
// reconstructed with the transmitted caches restored verbatim.
//
// The cached filesystem path is only restored when the payload separator
// marker matches the reviving platform family; otherwise it is dropped and
// recomputed lazily, since its separators would be wrong for this host.
func Revive(v any, opts ...Option) (*Cached, error) {
	cfg := newConfig(opts)
	switch v := v.(type) {
	case nil:
		return nil, nil
	case *Cached:
		return v, nil
	case *URI:
		return &Cached{URI: v, p: cfg.platform}, nil
	case Payload:
		return revivePayload(v, cfg), nil
	case *Payload:
		if v == nil {
			return nil, nil
		}
		return revivePayload(*v, cfg), nil
	case []byte:
		var p Payload
		if err := json.Unmarshal(v, &p); err != nil {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPayload, err))
		}
		return revivePayload(p, cfg), nil
	default:
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPayload, "unexpected type %T", v))
	}
}

func revivePayload(p Payload, cfg config) *Cached {
	c := &Cached{
		URI: mustURI(Components{
			Scheme:    p.Scheme,
			Authority: p.Authority,
			Path:      p.Path,
			Query:     p.Query,
			Fragment:  p.Fragment,
		}),
		p: cfg.platform,
	}
	if p.External != "" {
		s := p.External
		c.external.Store(&s)
	}
	if p.FSPath != "" {
		marker := 0
		if cfg.platform.IsWindows() {
			marker = winSepMarker
		}
		if p.Sep == marker {
			s := p.FSPath
			c.fsPath.Store(&s)
		}
	}
	return c
}

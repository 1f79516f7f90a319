package uri

import "github.com/urikit/uri/internal/errorutil"

// Error is a string type that implements the error interface.
type Error = errorutil.Error

const (
	// ErrInvalidScheme is returned when a scheme does not match the
	// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) rule.
	ErrInvalidScheme Error = "invalid scheme"
	// ErrMissingScheme is returned by strict construction when the scheme
	// is empty.
	ErrMissingScheme Error = "missing scheme"
	// ErrInvalidPathAuthority is returned when the path shape does not
	// agree with the presence or absence of an authority.
	ErrInvalidPathAuthority Error = "invalid path/authority combination"
	// ErrEmptyBasePath is returned by JoinPath when the base URI has an
	// empty path.
	ErrEmptyBasePath Error = "empty base path"
	// ErrInvalidPayload is returned by Revive for inputs it cannot
	// reconstruct a URI from.
	ErrInvalidPayload Error = "invalid payload"
)

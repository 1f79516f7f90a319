// Package uri provides an immutable, structured representation of a
// Uniform Resource Identifier (RFC 3986) intended as the canonical handle
// for files and abstract resources inside a larger application.
//
// # Overview
//
// A [URI] owns a five-component tuple (scheme, authority, path, query,
// fragment). Absent components are empty strings. Values are immutable:
// every "modification" derives a new instance, so URIs are safe to share
// across goroutines and to use as map keys via [URI.Components].
//
//	u, _ := uri.Parse("https://example.com/some/path?q=1#frag")
//	u.Scheme()    // "https"
//	u.Authority() // "example.com"
//	u.Path()      // "/some/path"
//
// # Construction
//
//   - [Parse] splits an arbitrary string with minimal validation. Without
//     [WithStrict] a missing scheme becomes "file" and no invariants are
//     checked; with it the scheme and path/authority invariants are
//     enforced.
//   - [From] builds from explicit [Components] and always validates.
//   - [File] converts a native filesystem path (drive letters and UNC
//     shares included) into a file-scheme URI.
//   - [URI.With] and [URI.JoinPath] derive modified values; With returns
//     the identical instance when nothing changes.
//
// # Rendering and filesystem paths
//
// [URI.String] and [URI.Render] externalize the value with percent
// encoding; that string is the only form safe to persist, log or transmit,
// and round-trips through [Parse]. [URI.FSPath] projects the components
// onto native path syntax (backslashes and UNC form on windows-like
// platforms) for OS API consumption only. Platform behavior is supplied by
// the [github.com/urikit/uri/platform] package and can be overridden with
// [WithPlatform].
//
// # Caching and process boundaries
//
// [Cached] memoizes the externalized string and the filesystem path with
// write-once semantics. Its [Payload] wire shape carries the components
// plus any computed caches across a process boundary; [Revive]
// reconstructs the value and restores the caches without recomputing the
// platform-dependent transforms.
package uri

//go:generate go tool errtrace -w .

package uri

import (
	"braces.dev/errtrace"

	"github.com/urikit/uri/platform"
)

// JoinPath derives a URI whose path is the base path with the given
// segments appended and normalized. See [JoinPathOn] for the semantics.
func (u *URI) JoinPath(segments ...string) (*URI, error) {
	return errtrace.Wrap2(JoinPathOn(platform.Native, u, segments...))
}

// JoinPathOn joins segments onto the path of u using the join-and-normalize
// semantics of the given platform.
//
// On a windows-like platform with a file scheme the join happens in native
// path space: the URI is projected with [URI.FSPath] (keeping drive
// casing), joined natively and reinterpreted through [File]. Everything
// else joins POSIX-style directly on the URI path text. Only the path of u
// changes; the result is derived via [URI.With].
//
// JoinPathOn fails with [ErrEmptyBasePath] when the path of u is empty.
func JoinPathOn(p platform.Platform, u *URI, segments ...string) (*URI, error) {
	if u == nil || u.c.Path == "" {
		return nil, errtrace.Wrap(ErrEmptyBasePath)
	}

	var newPath string
	if p.IsWindows() && u.c.Scheme == SchemeFile {
		native := p.Join(append([]string{u.fsPath(p, true)}, segments...)...)
		newPath = fileOn(p, native).Path()
	} else {
		newPath = platform.POSIX.Join(append([]string{u.c.Path}, segments...)...)
	}
	return u.With(SetPath(newPath)), nil
}

package uri

import (
	"strings"

	"github.com/urikit/uri/internal/grammar"
	"github.com/urikit/uri/internal/stringutils"
	"github.com/urikit/uri/platform"
)

// FSPath projects the URI onto native filesystem path syntax. It operates
// on the components directly, performs no validation and no existence
// checks; the result is intended for native API consumption only, never for
// display or persistence.
//
// On windows-like platforms every "/" becomes "\". File URIs with an
// authority project to UNC form; a "/X:" drive-letter path loses its
// leading slash and, unless [WithKeepDriveLetterCasing] is given, gets a
// lowercased drive letter.
func (u *URI) FSPath(opts ...Option) string {
	cfg := newConfig(opts)
	return u.fsPath(cfg.platform, cfg.keepDriveLetterCasing)
}

func (u *URI) fsPath(p platform.Platform, keepDriveLetterCasing bool) string {
	if u == nil {
		return ""
	}

	c := u.c
	var value string
	switch {
	case c.Authority != "" && len(c.Path) > 1 && c.Scheme == SchemeFile:
		value = "//" + c.Authority + c.Path
	case hasDriveLetterPath(c.Path):
		if keepDriveLetterCasing {
			value = c.Path[1:]
		} else {
			value = stringutils.LCase(c.Path[1:2]) + c.Path[2:]
		}
	default:
		value = c.Path
	}
	if p.IsWindows() {
		value = strings.ReplaceAll(value, "/", `\`)
	}
	return value
}

func hasDriveLetterPath(path string) bool {
	return len(path) >= 3 && path[0] == '/' && grammar.IsAlphaChar(path[1]) && path[2] == ':'
}

// File creates a file-scheme URI from a native filesystem path. It is the
// inverse of [URI.FSPath]: on windows-like platforms backslashes are
// normalized to slashes first, and a UNC prefix ("//host/...") becomes the
// authority.
func File(fsPath string, opts ...Option) *URI {
	return fileOn(newConfig(opts).platform, fsPath)
}

func fileOn(p platform.Platform, fsPath string) *URI {
	var authority string
	if p.IsWindows() {
		fsPath = strings.ReplaceAll(fsPath, `\`, "/")
	}
	if len(fsPath) >= 2 && fsPath[0] == '/' && fsPath[1] == '/' {
		if idx := strings.IndexByte(fsPath[2:], '/'); idx == -1 {
			authority = fsPath[2:]
			fsPath = "/"
		} else {
			authority = fsPath[2 : 2+idx]
			fsPath = fsPath[2+idx:]
			if fsPath == "" {
				fsPath = "/"
			}
		}
	}
	return mustURI(Components{Scheme: SchemeFile, Authority: authority, Path: fsPath})
}

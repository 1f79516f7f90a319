// Package platform supplies the platform capabilities consumed by URI
// filesystem-path operations: the windows-likeness query and the native
// join-and-normalize primitive. Implementations are pure and side-effect
// free; none of them touch the filesystem.
package platform

//go:generate go tool mockgen -destination ../internal/testutil/platformmock/platform.go -package platformmock github.com/urikit/uri/platform Platform

import (
	"path"
	"runtime"
	"strings"
)

// Platform answers whether a filesystem family is windows-like and joins
// path elements with that family's separator and normalization rules.
type Platform interface {
	IsWindows() bool
	// Join joins the non-empty elements into a single path and normalizes
	// the result lexically: separators unified, "." elements dropped, ".."
	// elements collapsed.
	Join(elem ...string) string
}

var (
	// POSIX joins with "/" separators.
	POSIX Platform = posixPlatform{}
	// Windows joins with "\" separators and understands drive letters and
	// UNC roots.
	Windows Platform = windowsPlatform{}
	// Native is the platform the process runs on.
	Native = nativePlatform()
)

func nativePlatform() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return POSIX
}

type posixPlatform struct{}

func (posixPlatform) IsWindows() bool { return false }

func (posixPlatform) Join(elem ...string) string {
	if p := path.Join(elem...); p != "" {
		return p
	}
	return "."
}

type windowsPlatform struct{}

func (windowsPlatform) IsWindows() bool { return true }

func (windowsPlatform) Join(elem ...string) string {
	parts := elem[:0:0]
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}
	if len(parts) == 0 {
		return "."
	}
	return winNormalize(strings.Join(parts, `\`))
}

// winNormalize cleans a windows-style path: separators become "\", "." and
// ".." elements are resolved without ever crossing above a drive or UNC
// root.
func winNormalize(p string) string {
	p = strings.ReplaceAll(p, "/", `\`)
	vol := winVolumeLen(p)
	rest := p[vol:]
	rooted := strings.HasPrefix(rest, `\`)

	var out []string
	for seg := range strings.SplitSeq(rest, `\`) {
		switch seg {
		case "", ".":
		case "..":
			if n := len(out); n > 0 && out[n-1] != ".." {
				out = out[:n-1]
			} else if !rooted {
				out = append(out, "..")
			}
		default:
			out = append(out, seg)
		}
	}

	s := strings.Join(out, `\`)
	switch {
	case rooted:
		return p[:vol] + `\` + s
	case vol > 0:
		return p[:vol] + s
	case s == "":
		return "."
	}
	return s
}

// winVolumeLen returns the length of the volume prefix of p: 2 for a drive
// ("C:"), the "\\host\share" length for a UNC path, 0 otherwise.
func winVolumeLen(p string) int {
	if len(p) >= 2 && p[1] == ':' && isAlpha(p[0]) {
		return 2
	}
	if len(p) >= 5 && p[0] == '\\' && p[1] == '\\' && p[2] != '\\' {
		hostEnd := strings.IndexByte(p[2:], '\\')
		if hostEnd <= 0 {
			return 0
		}
		shareStart := 2 + hostEnd + 1
		if shareStart >= len(p) || p[shareStart] == '\\' {
			return 0
		}
		if shareEnd := strings.IndexByte(p[shareStart:], '\\'); shareEnd > 0 {
			return shareStart + shareEnd
		}
		return len(p)
	}
	return 0
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

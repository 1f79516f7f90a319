package uri

import (
	"strings"

	"github.com/urikit/uri/internal/grammar"
	"github.com/urikit/uri/internal/stringutils"
)

// render reassembles scheme ":" "//"? authority? path? "?" query? "#" fragment?.
//
// skipEncoding switches scheme, authority, path and query to the minimal
// escaping policy; the fragment is always encoded with the full policy.
func (u *URI) render(sb *strings.Builder, skipEncoding bool) {
	enc := func(s string, allowSlash bool) string {
		if skipEncoding {
			return grammar.EscapeMinimal(s)
		}
		return grammar.Escape(s, allowSlash)
	}

	c := u.c
	if c.Scheme != "" {
		sb.WriteString(c.Scheme)
		sb.WriteByte(':')
	}
	// file URIs keep their double slash even without an authority.
	if c.Authority != "" || c.Scheme == SchemeFile {
		sb.WriteString("//")
	}
	if authority := c.Authority; authority != "" {
		if idx := strings.LastIndexByte(authority, '@'); idx != -1 {
			userinfo := authority[:idx]
			authority = authority[idx+1:]
			if j := strings.LastIndexByte(userinfo, ':'); j == -1 {
				sb.WriteString(enc(userinfo, false))
			} else {
				sb.WriteString(enc(userinfo[:j], false))
				sb.WriteByte(':')
				sb.WriteString(enc(userinfo[j+1:], false))
			}
			sb.WriteByte('@')
		}
		authority = stringutils.LCase(authority)
		if j := strings.LastIndexByte(authority, ':'); j == -1 {
			sb.WriteString(enc(authority, false))
		} else {
			sb.WriteString(enc(authority[:j], false))
			sb.WriteString(authority[j:])
		}
	}
	if path := c.Path; path != "" {
		// Lowercase windows drive letters for comparability across
		// case-insensitive filesystems.
		if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
			if d := path[1]; 'A' <= d && d <= 'Z' {
				path = "/" + stringutils.LCase(path[1:2]) + path[2:]
			}
		} else if len(path) >= 2 && path[1] == ':' {
			if d := path[0]; 'A' <= d && d <= 'Z' {
				path = stringutils.LCase(path[0:1]) + path[1:]
			}
		}
		sb.WriteString(enc(path, true))
	}
	if c.Query != "" {
		sb.WriteByte('?')
		sb.WriteString(enc(c.Query, false))
	}
	if c.Fragment != "" {
		sb.WriteByte('#')
		sb.WriteString(grammar.Escape(c.Fragment, false))
	}
}

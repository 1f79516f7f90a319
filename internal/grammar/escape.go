// Package grammar implements the percent-encoding codec and character
// classes used by URI parsing and rendering.
package grammar

import (
	"bytes"

	"github.com/urikit/uri/internal/constraints"
)

const upperhex = "0123456789ABCDEF"

// escapeTable maps reserved characters and space to their fixed
// percent-encoded form.
var escapeTable = [256]string{
	':':  "%3A",
	'/':  "%2F",
	'?':  "%3F",
	'#':  "%23",
	'[':  "%5B",
	']':  "%5D",
	'@':  "%40",
	'!':  "%21",
	'$':  "%24",
	'&':  "%26",
	'\'': "%27",
	'(':  "%28",
	')':  "%29",
	'*':  "%2A",
	'+':  "%2B",
	',':  "%2C",
	';':  "%3B",
	'=':  "%3D",
	' ':  "%20",
}

// Escape encodes s with the full policy: unreserved characters pass through,
// characters from the reserved table are replaced with their fixed triples and
// any other byte is percent-encoded generically. With allowSlash the "/" byte
// passes through unchanged.
//
// The original s is returned when nothing needs escaping.
func Escape[T constraints.Byteseq](s T, allowSlash bool) T {
	for i := 0; i < len(s); i++ {
		if !passVerbatim(s[i], allowSlash) {
			return T(escapeFrom(s, i, allowSlash))
		}
	}
	return s
}

func escapeFrom[T constraints.Byteseq](s T, start int, allowSlash bool) []byte {
	var b bytes.Buffer
	b.Grow(len(s) + 2*(len(s)-start))
	b.WriteString(string(s[:start]))
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case passVerbatim(c, allowSlash):
			b.WriteByte(c)
		case escapeTable[c] != "":
			b.WriteString(escapeTable[c])
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
	return b.Bytes()
}

func passVerbatim(c byte, allowSlash bool) bool {
	return IsCharUnreserved(c) || (allowSlash && c == '/')
}

// EscapeMinimal encodes s with the minimal policy: only "#" and "?" are
// escaped, everything else passes through verbatim. The original s is
// returned when it contains neither.
func EscapeMinimal[T constraints.Byteseq](s T) T {
	i := 0
	for ; i < len(s); i++ {
		if s[i] == '#' || s[i] == '?' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s) + 4)
	b.WriteString(string(s[:i]))
	for ; i < len(s); i++ {
		switch s[i] {
		case '#':
			b.WriteString("%23")
		case '?':
			b.WriteString("%3F")
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Unescape decodes percent-triples in s. Triples are decoded together per
// maximal run of "% ALPHANUM ALPHANUM" substrings; when a run cannot be
// decoded, its first triple is kept as literal text and decoding resumes on
// the remainder. The original s is returned when it contains no triples.
func Unescape[T constraints.Byteseq](s T) T {
	i := 0
	for ; i < len(s); i++ {
		if isTripleAt(s, i) {
			break
		}
	}
	if i == len(s) {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	b.WriteString(string(s[:i]))
	for i < len(s) {
		if !isTripleAt(s, i) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for isTripleAt(s, j) {
			j += 3
		}
		decodeRun(&b, string(s[i:j]))
		i = j
	}
	return T(b.Bytes())
}

func isTripleAt[T constraints.Byteseq](s T, i int) bool {
	return i+2 < len(s) && s[i] == '%' && isalnum(s[i+1]) && isalnum(s[i+2])
}

// decodeRun writes the decoded form of a run of triples. A run decodes only
// as a whole: any non-hex digit fails the run, the first triple stays literal
// and the rest is retried.
func decodeRun(b *bytes.Buffer, run string) {
	for len(run) > 0 {
		ok := true
		for i := 0; i < len(run); i += 3 {
			if !ishex(run[i+1]) || !ishex(run[i+2]) {
				ok = false
				break
			}
		}
		if ok {
			for i := 0; i < len(run); i += 3 {
				b.WriteByte(unhex(run[i+1])<<4 | unhex(run[i+2]))
			}
			return
		}
		b.WriteString(run[:3])
		run = run[3:]
	}
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func isalnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsAlphaChar checks the ALPHA rule.
func IsAlphaChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsCharUnreserved checks the RFC 3986 unreserved rule.
func IsCharUnreserved(c byte) bool {
	return isalnum(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// IsSchemeName checks the RFC 3986 scheme rule:
// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func IsSchemeName[T constraints.Byteseq](s T) bool {
	if len(s) == 0 || !IsAlphaChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if c := s[i]; !isalnum(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

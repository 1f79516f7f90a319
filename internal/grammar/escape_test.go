package grammar_test

import (
	"testing"

	"github.com/urikit/uri/internal/grammar"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		str        string
		allowSlash bool
		want       string
	}{
		{"empty", "", false, ""},
		{"unreserved", "abc-DEF_123.~", false, "abc-DEF_123.~"},
		{"space", "a b", false, "a%20b"},
		{"slash escaped", "a/b", false, "a%2Fb"},
		{"slash allowed", "/a/b c", true, "/a/b%20c"},
		{"reserved table", ":?#[]@!$&'()*+,;=", false,
			"%3A%3F%23%5B%5D%40%21%24%26%27%28%29%2A%2B%2C%3B%3D"},
		{"percent", "100%", false, "100%25"},
		{"existing triple re-escaped", "a%20b", false, "a%2520b"},
		{"utf8", "世界", false, "%E4%B8%96%E7%95%8C"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Escape(c.str, c.allowSlash), c.want; got != want {
				t.Errorf("grammar.Escape(%q, %v) = %q, want %q", c.str, c.allowSlash, got, want)
			}
		})
	}
}

func TestEscapeNoAlloc(t *testing.T) {
	s := "nothing-to-escape_here.~"
	if got := testing.AllocsPerRun(100, func() {
		if out := grammar.Escape(s, false); out != s {
			t.Fatalf("grammar.Escape(%q, false) = %q, want unchanged", s, out)
		}
	}); got != 0 {
		t.Errorf("grammar.Escape allocs = %v, want 0", got)
	}
}

func TestEscapeMinimal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"verbatim", "a b/c:ä", "a b/c:ä"},
		{"hash and question", "a b#c?d", "a b%23c%3Fd"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.EscapeMinimal(c.str), c.want; got != want {
				t.Errorf("grammar.EscapeMinimal(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no triples", "abc%ax%", "abc%ax%"},
		{"simple", "a%20b", "a b"},
		{"utf8 run", "%E4%B8%96", "世"},
		{"non-hex triple", "%zz", "%zz"},
		{"run poisoned by non-hex", "%e4%zz", "%e4%zz"},
		{"literal then decodable", "%zz%20", "%zz "},
		{"tolerated non-utf8 byte", "%e4", "\xe4"},
		{"bytes", "x%2Fy%3a", "x/y:"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unescape(c.str), c.want; got != want {
				t.Errorf("grammar.Unescape(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestUnescapeNoAlloc(t *testing.T) {
	s := "no escapes % here"
	if got := testing.AllocsPerRun(100, func() {
		if out := grammar.Unescape(s); out != s {
			t.Fatalf("grammar.Unescape(%q) = %q, want unchanged", s, out)
		}
	}); got != 0 {
		t.Errorf("grammar.Unescape allocs = %v, want 0", got)
	}
}

func TestIsSchemeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"http", true},
		{"HTTPS", true},
		{"x-y+z.2", true},
		{"3ttp", false},
		{"ht tp", false},
		{"a:b", false},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsSchemeName(c.str), c.want; got != want {
				t.Errorf("grammar.IsSchemeName(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func BenchmarkEscape(b *testing.B) {
	cases := []struct {
		name string
		in   string
	}{
		{"clean", "/a/long/path/with/nothing-to-escape"},
		{"dirty", "/a dir/with spaces/and+plus"},
	}

	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				grammar.Escape(c.in, true)
			}
		})
	}
}

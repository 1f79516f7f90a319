package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/urikit/uri"
	"github.com/urikit/uri/platform"
)

func TestJoinPathOn(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		p        platform.Platform
		base     string
		segments []string
		wantPath string
		wantErr  error
	}{
		{
			"posix append",
			platform.POSIX,
			"https://h/a/b",
			[]string{"c"},
			"/a/b/c",
			nil,
		},
		{
			"posix dotdot",
			platform.POSIX,
			"https://h/a/b",
			[]string{"c", "../d"},
			"/a/b/d",
			nil,
		},
		{
			"posix collapses empty and dot segments",
			platform.POSIX,
			"file:///a//b",
			[]string{".", "c"},
			"/a/b/c",
			nil,
		},
		{
			"windows file joins natively",
			platform.Windows,
			"file:///c:/foo",
			[]string{"bar", "..", "baz"},
			"/c:/foo/baz",
			nil,
		},
		{
			"windows file dotdot stops at drive root",
			platform.Windows,
			"file:///c:/foo",
			[]string{"..", "..", ".."},
			"/c:/",
			nil,
		},
		{
			"windows unc join",
			platform.Windows,
			"file://server/share/x",
			[]string{"y"},
			"/share/x/y",
			nil,
		},
		{
			"windows non-file joins posix-style",
			platform.Windows,
			"https://h/a",
			[]string{"b"},
			"/a/b",
			nil,
		},
		{
			"empty base path",
			platform.POSIX,
			"x:",
			[]string{"a"},
			"",
			uri.ErrEmptyBasePath,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			base, err := uri.Parse(c.base)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", c.base, err)
			}
			joined, err := uri.JoinPathOn(c.p, base, c.segments...)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.JoinPathOn(%q, %q) error = %v, want %v", c.base, c.segments, err, c.wantErr)
			}
			if err != nil {
				return
			}
			if got, want := joined.Path(), c.wantPath; got != want {
				t.Errorf("uri.JoinPathOn(%q, %q).Path() = %q, want %q", c.base, c.segments, got, want)
			}
		})
	}
}

func TestJoinPathKeepsOtherComponents(t *testing.T) {
	t.Parallel()

	base, err := uri.Parse("https://h/a?q=1#f")
	if err != nil {
		t.Fatalf("uri.Parse() error = %v, want nil", err)
	}
	joined, err := uri.JoinPathOn(platform.POSIX, base, "b")
	if err != nil {
		t.Fatalf("uri.JoinPathOn() error = %v, want nil", err)
	}
	want := uri.Components{Scheme: "https", Authority: "h", Path: "/a/b", Query: "q=1", Fragment: "f"}
	if diff := cmp.Diff(joined.Components(), want); diff != "" {
		t.Errorf("joined components mismatch (-got +want):\n%v", diff)
	}
	if got, want := base.Path(), "/a"; got != want {
		t.Errorf("base path changed to %q, want %q", got, want)
	}
}

func TestJoinPathNilBase(t *testing.T) {
	t.Parallel()

	var nilURI *uri.URI
	if _, err := nilURI.JoinPath("a"); !cmp.Equal(err, uri.ErrEmptyBasePath, cmpopts.EquateErrors()) {
		t.Errorf("(*uri.URI)(nil).JoinPath() error = %v, want %v", err, uri.ErrEmptyBasePath)
	}
}

package uri_test

import (
	"fmt"

	"github.com/urikit/uri"
	"github.com/urikit/uri/platform"
)

func ExampleParse() {
	u, _ := uri.Parse("https://example.com/some/path?q=1#frag")
	fmt.Println(u.Scheme())
	fmt.Println(u.Authority())
	fmt.Println(u.Path())
	fmt.Println(u.Query())
	fmt.Println(u.Fragment())
	// Output:
	// https
	// example.com
	// /some/path
	// q=1
	// frag
}

func ExampleURI_With() {
	u, _ := uri.Parse("https://example.com/a?q=1")
	fmt.Println(u.With(uri.SetPath("/b"), uri.SetQuery("")))
	fmt.Println(u)
	// Output:
	// https://example.com/b
	// https://example.com/a?q=1
}

func ExampleURI_FSPath() {
	u, _ := uri.Parse("file:///C:/win/path")
	fmt.Println(u.FSPath(uri.WithPlatform(platform.Windows)))
	fmt.Println(u.FSPath(uri.WithPlatform(platform.POSIX)))
	// Output:
	// c:\win\path
	// c:/win/path
}

func ExampleFile() {
	u := uri.File(`\\server\share\doc.txt`, uri.WithPlatform(platform.Windows))
	fmt.Println(u.Authority())
	fmt.Println(u.Path())
	// Output:
	// server
	// /share/doc.txt
}

func ExampleJoinPathOn() {
	u, _ := uri.Parse("file:///c:/foo")
	joined, _ := uri.JoinPathOn(platform.Windows, u, "bar", "..", "baz")
	fmt.Println(joined.Path())
	// Output:
	// /c:/foo/baz
}

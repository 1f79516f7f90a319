// Command uriq is a small developer tool for inspecting URI values: it
// parses, formats, projects and joins them the same way the library does.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urikit/uri"
	"github.com/urikit/uri/internal/log"
	"github.com/urikit/uri/platform"
)

type flags struct {
	strict        bool
	skipEncoding  bool
	keepDriveCase bool
	windows       bool
	posix         bool
}

func (f *flags) options() []uri.Option {
	var opts []uri.Option
	if f.strict {
		opts = append(opts, uri.WithStrict())
	}
	if f.skipEncoding {
		opts = append(opts, uri.WithSkipEncoding())
	}
	if f.keepDriveCase {
		opts = append(opts, uri.WithKeepDriveLetterCasing())
	}
	if p := f.platform(); p != nil {
		opts = append(opts, uri.WithPlatform(p))
	}
	return opts
}

func (f *flags) platform() platform.Platform {
	switch {
	case f.windows:
		return platform.Windows
	case f.posix:
		return platform.POSIX
	}
	return nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Def.Error("uriq failed", "error", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "uriq",
		Short:         "Inspect and transform URI values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&f.strict, "strict", false, "enforce scheme and path/authority invariants")
	pf.BoolVar(&f.windows, "windows", false, "treat the filesystem as windows-like")
	pf.BoolVar(&f.posix, "posix", false, "treat the filesystem as posix")

	parse := &cobra.Command{
		Use:   "parse <uri>",
		Short: "Parse a URI and print its components as a wire payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.Parse(args[0], f.options()...)
			if err != nil {
				return err
			}
			c, err := uri.Revive(u, f.options()...)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(c.Payload(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	format := &cobra.Command{
		Use:   "format <uri>",
		Short: "Parse a URI and print its canonical encoded form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.Parse(args[0], f.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.Render(f.options()...))
			return nil
		},
	}
	format.Flags().BoolVar(&f.skipEncoding, "skip-encoding", false, "use the minimal escaping policy")

	fspath := &cobra.Command{
		Use:   "fspath <uri>",
		Short: "Print the native filesystem path of a URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.Parse(args[0], f.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.FSPath(f.options()...))
			return nil
		},
	}
	fspath.Flags().BoolVar(&f.keepDriveCase, "keep-drive-casing", false, "preserve windows drive letter casing")

	join := &cobra.Command{
		Use:   "join <uri> <segment>...",
		Short: "Append path segments to a URI and print the result",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uri.Parse(args[0], f.options()...)
			if err != nil {
				return err
			}
			p := f.platform()
			if p == nil {
				p = platform.Native
			}
			joined, err := uri.JoinPathOn(p, u, args[1:]...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), joined)
			return nil
		},
	}

	root.AddCommand(parse, format, fspath, join)
	return root
}

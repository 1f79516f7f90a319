package uri

import "github.com/urikit/uri/platform"

// Option configures parsing, rendering and filesystem-path projection.
type Option func(*config)

type config struct {
	strict                bool
	skipEncoding          bool
	keepDriveLetterCasing bool
	platform              platform.Platform
}

func newConfig(opts []Option) config {
	cfg := config{platform: platform.Native}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}

// WithStrict makes Parse enforce the scheme and path/authority invariants
// instead of applying the non-strict fixups.
func WithStrict() Option {
	return func(cfg *config) { cfg.strict = true }
}

// WithSkipEncoding makes Render use the minimal escaping policy: only "#"
// and "?" are escaped in scheme, authority, path and query. The result is
// more readable but is not guaranteed to round-trip through Parse.
func WithSkipEncoding() Option {
	return func(cfg *config) { cfg.skipEncoding = true }
}

// WithKeepDriveLetterCasing makes FSPath preserve the casing of a windows
// drive letter instead of lowercasing it.
func WithKeepDriveLetterCasing() Option {
	return func(cfg *config) { cfg.keepDriveLetterCasing = true }
}

// WithPlatform overrides the platform capabilities used by File, FSPath,
// JoinPath, NewCached and Revive. The default is [platform.Native].
func WithPlatform(p platform.Platform) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.platform = p
		}
	}
}

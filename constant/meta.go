// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// Youngoor is the canonical application identifier used for filesystem paths and CLI branding.
	Youngoor = "youngoor"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every request to a platform API and handed to downloaders with resolved media.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/youngoor/youngoor/constant.Revision=$(git rev-parse --short HEAD)"
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Banner heads the root command's long help.
//
//go:embed ascii.txt
var Banner string

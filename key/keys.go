// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Resolution defaults - applied when the corresponding resolve flag is not given.
const (
	ResolveQuality  = "resolve.quality"
	ResolveFormat   = "resolve.format"
	ResolveEpisodes = "resolve.episodes"
)

// Sources - registration of Lua sources next to the built-in ones.
const (
	SourcesCustom = "sources.custom"
)

// Network - transport used by the built-in sources.
const (
	NetworkTimeout        = "network.timeout"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// History - remembered page URLs for shell completion.
const (
	HistoryRememberURLs = "history.remember_urls"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliProgress     = "cli.progress"
)

package constant

// Global functions a Lua source must define. DimensionFn is optional.
const (
	ValidFn     = "Valid"
	EpisodesFn  = "Episodes"
	StreamFn    = "Stream"
	DimensionFn = "Dimension"
)

// SourceTemplate is a Go text/template for scaffolding new Lua source files.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias episode { key: string, title: string, cover: string|nil, description: string|nil }
---@alias stream { video: string[], audio: string[]|nil, container: string|nil, headers: table<string, string>|nil }
---@alias tier { tier: string, code: number|nil, label: string|nil, auth: boolean|nil }


----- IMPORTS -----
--- END IMPORTS ---



----- VARIABLES -----
--- END VARIABLES ---



----- MAIN -----

--- Reports whether this source can handle the page URL.
-- @param url string Page URL
-- @return boolean
function {{ .ValidFn }}(url)
	return false
end


--- Lists the episodes behind a page URL, in playback order.
-- @param url string Page URL
-- @return episode[] Table of episodes
function {{ .EpisodesFn }}(url)
	return {}
end


--- Resolves stream URLs of one episode.
-- @param key string Episode key returned by {{ .EpisodesFn }}
-- @param tier string Requested tier, e.g. "1080p"
-- @param format string Requested container: "flv", "mp4" or "dash"
-- @param token string|nil Credential set with "{{ .App }} auth login"
-- @return stream
function {{ .StreamFn }}(key, tier, format, token)
	return { video = {} }
end


--- Optional. Lists supported tiers, lowest first.
-- @return tier[]
-- function {{ .DimensionFn }}()
-- 	return {}
-- end


--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`

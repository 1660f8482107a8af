package source

import "strings"

// Media is the resolved form of an episode.
//
// Video always holds at least one URL. Audio is empty for segmented containers,
// whose video URLs carry muxed audio.
type Media struct {
	Title       string `json:"title"`
	Index       int    `json:"index"`
	Cover       string `json:"cover,omitempty"`
	Description string `json:"description,omitempty"`
	// Tier is the tier the platform actually served.
	Tier      Tier      `json:"tier"`
	Container Container `json:"container"`
	// Video holds every segment, in playback order, for segmented containers.
	Video []string `json:"video"`
	Audio []string `json:"audio"`
	// Headers are required by the platform's CDN when downloading the URLs.
	Headers map[string]string `json:"headers,omitempty"`
}

// Separated reports whether audio is served apart from video.
func (m *Media) Separated() bool {
	return !m.Container.Segmented()
}

func (m *Media) String() string {
	var b strings.Builder
	b.WriteString(m.Title)
	b.WriteString(" [")
	b.WriteString(m.Tier.String())
	b.WriteString(" ")
	b.WriteString(m.Container.String())
	b.WriteString("]")
	return b.String()
}

package source

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Tier is a resolution tier, ordered from lowest to highest.
type Tier int

const (
	Tier360P Tier = iota + 1
	Tier480P
	Tier720P
	Tier720P60
	Tier1080P
	Tier1080PPlus
	Tier1080P60
	Tier4K
)

var tierNames = map[Tier]string{
	Tier360P:      "360p",
	Tier480P:      "480p",
	Tier720P:      "720p",
	Tier720P60:    "720p60",
	Tier1080P:     "1080p",
	Tier1080PPlus: "1080p+",
	Tier1080P60:   "1080p60",
	Tier4K:        "4k",
}

// Tiers returns every tier, lowest first.
func Tiers() []Tier {
	return []Tier{Tier360P, Tier480P, Tier720P, Tier720P60, Tier1080P, Tier1080PPlus, Tier1080P60, Tier4K}
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// ParseTier parses a tier name such as "1080p" or "4K".
func ParseTier(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for tier, name := range tierNames {
		if name == s {
			return tier, nil
		}
	}
	return 0, fmt.Errorf("unknown quality %q, expected one of %s", s, strings.Join(lo.Map(Tiers(), func(t Tier, _ int) string {
		return t.String()
	}), ", "))
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Container is the delivery shape requested from the platform.
type Container int

const (
	// FLV is a legacy container served as muxed segments.
	FLV Container = iota + 1
	// MP4 is a single muxed file, kept for low tiers on most platforms.
	MP4
	// DASH serves video and audio as separate tracks.
	DASH
)

var containerNames = map[Container]string{
	FLV:  "flv",
	MP4:  "mp4",
	DASH: "dash",
}

// Containers returns every container.
func Containers() []Container {
	return []Container{FLV, MP4, DASH}
}

func (c Container) String() string {
	if name, ok := containerNames[c]; ok {
		return name
	}
	return fmt.Sprintf("container(%d)", int(c))
}

// Segmented reports whether the container is delivered as muxed segments.
func (c Container) Segmented() bool {
	return c == FLV || c == MP4
}

// ParseContainer parses a container name.
func ParseContainer(s string) (Container, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for container, name := range containerNames {
		if name == s {
			return container, nil
		}
	}
	return 0, fmt.Errorf("unknown format %q, expected one of flv, mp4, dash", s)
}

func (c Container) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Container) UnmarshalText(text []byte) error {
	parsed, err := ParseContainer(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Quality is a requested tier and container. Sources translate it into platform codes.
type Quality struct {
	Tier      Tier      `json:"tier"`
	Container Container `json:"container"`
}

// ParseQuality parses a tier and container name pair.
func ParseQuality(tier, container string) (Quality, error) {
	t, err := ParseTier(tier)
	if err != nil {
		return Quality{}, err
	}

	c, err := ParseContainer(container)
	if err != nil {
		return Quality{}, err
	}

	return Quality{Tier: t, Container: c}, nil
}

func (q Quality) String() string {
	return q.Tier.String() + " " + q.Container.String()
}

// Dimension describes one tier a source can serve.
type Dimension struct {
	Tier  Tier   `json:"tier"`
	Code  int    `json:"code"`
	Label string `json:"label"`
	// Auth is set when the tier requires a credential.
	Auth bool `json:"auth"`
}

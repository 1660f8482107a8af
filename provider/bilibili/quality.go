package bilibili

import (
	"github.com/youngoor/youngoor/source"
)

// tier is the platform side of a source.Tier: its qn code and the label the site shows.
type tier struct {
	code  int
	label string
}

var tiers = map[source.Tier]tier{
	source.Tier360P:      {16, "360P 流畅"},
	source.Tier480P:      {32, "480P 清晰"},
	source.Tier720P:      {64, "720P 高清"},
	source.Tier720P60:    {74, "720P60 高帧率"},
	source.Tier1080P:     {80, "1080P 高清"},
	source.Tier1080PPlus: {112, "1080P+ 高码率"},
	source.Tier1080P60:   {116, "1080P60 高帧率"},
	source.Tier4K:        {120, "4K 超清"},
}

// fnval flags.
const (
	fnvalFLV  = 0
	fnvalMP4  = 1
	fnvalDASH = 16
	fnval4K   = 128
)

// needsAuth reports whether the tier is only served to logged in users.
func needsAuth(t source.Tier) bool {
	return t >= source.Tier720P60
}

// codes translates a quality into the qn and fnval request parameters.
func codes(q source.Quality) (qn, fnval int) {
	qn = tiers[q.Tier].code

	switch q.Container {
	case source.FLV:
		fnval = fnvalFLV
	case source.MP4:
		fnval = fnvalMP4
	default:
		fnval = fnvalDASH
		if q.Tier == source.Tier4K {
			fnval |= fnval4K
		}
	}
	return qn, fnval
}

// tierOf maps a qn code back to its tier.
func tierOf(qn int) (source.Tier, bool) {
	for t, p := range tiers {
		if p.code == qn {
			return t, true
		}
	}
	return 0, false
}

func dimension() []source.Dimension {
	all := source.Tiers()
	dims := make([]source.Dimension, 0, len(all))
	for _, t := range all {
		p := tiers[t]
		dims = append(dims, source.Dimension{
			Tier:  t,
			Code:  p.code,
			Label: p.label,
			Auth:  needsAuth(t),
		})
	}
	return dims
}

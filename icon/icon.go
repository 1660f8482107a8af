// Package icon renders the marks printed next to sources, tiers and streams in
// the style chosen by the icons.variant setting.
package icon

import (
	"github.com/spf13/viper"
	"github.com/youngoor/youngoor/key"
	"golang.org/x/exp/slices"
)

// Variants, in the column order of the glyph table.
const (
	Emoji   = "emoji"
	Nerd    = "nerd"
	Plain   = "plain"
	Kaomoji = "kaomoji"
	Squares = "squares"
)

var variants = []string{Emoji, Nerd, Plain, Kaomoji, Squares}

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return slices.Clone(variants)
}

// glyphs holds one rendering per variant.
type glyphs [5]string

// Get renders i in the configured variant. Unknown icons and variants render
// as nothing.
func Get(i Icon) string {
	return render(i, viper.GetString(key.IconsVariant))
}

func render(i Icon, variant string) string {
	g, ok := icons[i]
	if !ok {
		return ""
	}
	column := slices.Index(variants, variant)
	if column < 0 {
		return ""
	}
	return g[column]
}

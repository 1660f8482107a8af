// Package provider manages built-in and custom sources.
package provider

import (
	"path/filepath"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/youngoor/youngoor/filesystem"
	"github.com/youngoor/youngoor/key"
	"github.com/youngoor/youngoor/log"
	"github.com/youngoor/youngoor/provider/bilibili"
	"github.com/youngoor/youngoor/provider/custom"
	"github.com/youngoor/youngoor/source"
	"github.com/youngoor/youngoor/util"
	"github.com/youngoor/youngoor/where"
)

// CustomProviderExtension is the file extension of Lua sources.
const CustomProviderExtension = ".lua"

// Provider describes a source that can be instantiated.
type Provider struct {
	ID           string
	Name         string
	IsCustom     bool
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers in dispatch order.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   bilibili.ID,
			Name: bilibili.Name,
			CreateSource: func() (source.Source, error) {
				return bilibili.New(nil), nil
			},
		},
	}
}

// Customs returns all available Lua providers.
func Customs() []*Provider {
	providers, err := CustomProviders()
	if err != nil {
		log.Warn(err)
	}
	return providers
}

// All returns the built-in providers followed by the Lua ones, unless those are disabled.
func All() []*Provider {
	if !viper.GetBool(key.SourcesCustom) {
		return Builtins()
	}
	return append(Builtins(), Customs()...)
}

// Get finds a provider by name or ID, ignoring case.
func Get(name string) (*Provider, bool) {
	return lo.Find(All(), func(p *Provider) bool {
		return strings.EqualFold(p.Name, name) || strings.EqualFold(p.ID, name)
	})
}

// Closest returns the name of the provider closest to name, for suggestions.
func Closest(name string) mo.Option[string] {
	providers := All()
	if len(providers) == 0 {
		return mo.None[string]()
	}

	closest := lo.MinBy(providers, func(a, b *Provider) bool {
		return levenshtein.Distance(strings.ToLower(a.Name), strings.ToLower(name)) <
			levenshtein.Distance(strings.ToLower(b.Name), strings.ToLower(name))
	})
	return mo.Some(closest.Name)
}

// CustomProviders lists the Lua sources in where.Sources.
func CustomProviders() ([]*Provider, error) {
	dir := where.Sources()
	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != CustomProviderExtension {
			continue
		}

		path := filepath.Join(dir, f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:       custom.IDfromName(name),
			Name:     name,
			IsCustom: true,
			CreateSource: func() (source.Source, error) {
				return custom.LoadSource(path)
			},
		})
	}

	return providers, nil
}

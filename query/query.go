// Package query remembers resolved page URLs and suggests them for shell completion.
package query

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/youngoor/youngoor/filesystem"
	"github.com/youngoor/youngoor/key"
	"github.com/youngoor/youngoor/where"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank int    `json:"rank"`
	URL  string `json:"url"`
}

var (
	cacher     *gache.Cache[map[string]*record]
	cacherOnce sync.Once
)

func store() *gache.Cache[map[string]*record] {
	cacherOnce.Do(func() {
		cacher = gache.New[map[string]*record](&gache.Options{
			Path:       where.History(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

func load() map[string]*record {
	cached, expired, err := store().Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember records a page URL or raises its rank by weight.
func Remember(u string, weight int) error {
	if !viper.GetBool(key.HistoryRememberURLs) {
		return nil
	}

	u = sanitize(u)
	if u == "" {
		return nil
	}

	cached := load()
	if r, ok := cached[u]; ok {
		r.Rank += weight
	} else {
		cached[u] = &record{Rank: weight, URL: u}
	}

	return store().Set(cached)
}

// Forget removes a page URL.
func Forget(u string) error {
	cached := load()
	delete(cached, sanitize(u))
	return store().Set(cached)
}

// Suggest returns the best remembered URL matching partial input.
func Suggest(u string) mo.Option[string] {
	suggestions := SuggestMany(u)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns the remembered URLs fuzzily matching partial input, highest rank first.
func SuggestMany(u string) []string {
	if !viper.GetBool(key.HistoryRememberURLs) {
		return []string{}
	}

	u = sanitize(u)
	records := lo.Filter(lo.Values(load()), func(r *record, _ int) bool {
		return fuzzy.MatchFold(u, r.URL)
	})

	slices.SortFunc(records, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.URL, b.URL)
	})

	return lo.Map(records, func(r *record, _ int) string {
		return r.URL
	})
}

// sanitize trims whitespace only: identifiers in paths are case sensitive.
func sanitize(u string) string {
	return strings.TrimSpace(u)
}

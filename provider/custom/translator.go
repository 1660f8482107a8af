package custom

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/youngoor/youngoor/source"
	lua "github.com/yuin/gopher-lua"
)

func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return val.String()
	}
	return ""
}

func getOptional(table *lua.LTable, key string) mo.Option[string] {
	if s := getString(table, key); s != "" {
		return mo.Some(s)
	}
	return mo.None[string]()
}

// getStringList reads an array of strings, or a comma separated string.
func getStringList(table *lua.LTable, key string) []string {
	val := table.RawGetString(key)
	switch val.Type() {
	case lua.LTString:
		return lo.Map(strings.Split(val.String(), ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
	case lua.LTTable:
		var list []string
		tbl := val.(*lua.LTable)
		for i := 1; i <= tbl.Len(); i++ {
			if v := tbl.RawGetInt(i); v.Type() == lua.LTString {
				list = append(list, v.String())
			}
		}
		return list
	default:
		return nil
	}
}

func getStringMap(table *lua.LTable, key string) map[string]string {
	val := table.RawGetString(key)
	if val.Type() != lua.LTTable {
		return nil
	}

	m := make(map[string]string)
	val.(*lua.LTable).ForEach(func(k, v lua.LValue) {
		m[k.String()] = v.String()
	})
	return m
}

func episodeFromTable(table *lua.LTable, index int) (*source.Episode, error) {
	key := getString(table, "key")
	if key == "" {
		return nil, fmt.Errorf("episode %d must have a key", index)
	}

	return &source.Episode{
		Key:         key,
		Index:       index,
		Title:       getString(table, "title"),
		Cover:       getOptional(table, "cover"),
		Description: getOptional(table, "description"),
	}, nil
}

func mediaFromTable(table *lua.LTable, quality source.Quality) (*source.Media, error) {
	video := lo.Filter(getStringList(table, "video"), func(s string, _ int) bool {
		return s != ""
	})
	if len(video) == 0 {
		return nil, source.NoSuchResource("stream has no video url")
	}

	audio := lo.Filter(getStringList(table, "audio"), func(s string, _ int) bool {
		return s != ""
	})
	if audio == nil {
		audio = []string{}
	}

	media := &source.Media{
		Video:   video,
		Audio:   audio,
		Tier:    quality.Tier,
		Headers: getStringMap(table, "headers"),
	}

	switch name := getString(table, "container"); {
	case name != "":
		container, err := source.ParseContainer(name)
		if err != nil {
			return nil, source.RequestError(err.Error())
		}
		media.Container = container
	case len(audio) > 0:
		media.Container = source.DASH
	case quality.Container.Segmented():
		media.Container = quality.Container
	default:
		media.Container = source.MP4
	}

	if name := getString(table, "tier"); name != "" {
		if tier, err := source.ParseTier(name); err == nil {
			media.Tier = tier
		}
	}

	return media, nil
}

func dimensionFromTable(table *lua.LTable) ([]source.Dimension, error) {
	dims := make([]source.Dimension, 0, table.Len())
	for i := 1; i <= table.Len(); i++ {
		entry, ok := table.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("entry %d is not a table", i)
		}

		tier, err := source.ParseTier(getString(entry, "tier"))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		code, _ := entry.RawGetString("code").(lua.LNumber)
		dims = append(dims, source.Dimension{
			Tier:  tier,
			Code:  int(code),
			Label: lo.CoalesceOrEmpty(getString(entry, "label"), tier.String()),
			Auth:  lua.LVAsBool(entry.RawGetString("auth")),
		})
	}
	return dims, nil
}

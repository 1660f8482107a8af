package custom

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/youngoor/youngoor/source"
	lua "github.com/yuin/gopher-lua"
)

func list(L *lua.LState, values ...string) *lua.LTable {
	tbl := L.NewTable()
	for _, v := range values {
		tbl.Append(lua.LString(v))
	}
	return tbl
}

func TestEpisodeFromTable(t *testing.T) {
	Convey("episodeFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Should extract an episode with optional fields", func() {
			tbl := L.NewTable()
			tbl.RawSetString("key", lua.LString("ep-1"))
			tbl.RawSetString("title", lua.LString("Pilot"))
			tbl.RawSetString("cover", lua.LString("https://example.com/1.jpg"))

			episode, err := episodeFromTable(tbl, 3)
			So(err, ShouldBeNil)
			So(episode.Key, ShouldEqual, "ep-1")
			So(episode.Index, ShouldEqual, 3)
			So(episode.Title, ShouldEqual, "Pilot")
			So(episode.Cover.MustGet(), ShouldEqual, "https://example.com/1.jpg")
			So(episode.Description.IsAbsent(), ShouldBeTrue)
		})

		Convey("Should fail without a key", func() {
			tbl := L.NewTable()
			tbl.RawSetString("title", lua.LString("Pilot"))

			_, err := episodeFromTable(tbl, 1)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestMediaFromTable(t *testing.T) {
	Convey("mediaFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()
		quality := source.Quality{Tier: source.Tier720P, Container: source.FLV}

		Convey("Segments without audio keep the requested segmented container", func() {
			tbl := L.NewTable()
			tbl.RawSetString("video", list(L, "https://cdn/1.flv", "https://cdn/2.flv"))

			media, err := mediaFromTable(tbl, quality)
			So(err, ShouldBeNil)
			So(media.Video, ShouldResemble, []string{"https://cdn/1.flv", "https://cdn/2.flv"})
			So(media.Audio, ShouldBeEmpty)
			So(media.Container, ShouldEqual, source.FLV)
		})

		Convey("Separate audio means separate tracks", func() {
			tbl := L.NewTable()
			tbl.RawSetString("video", list(L, "https://cdn/v.m4s"))
			tbl.RawSetString("audio", list(L, "https://cdn/a.m4s"))

			media, err := mediaFromTable(tbl, quality)
			So(err, ShouldBeNil)
			So(media.Container, ShouldEqual, source.DASH)
			So(media.Separated(), ShouldBeTrue)
		})

		Convey("Explicit container, tier and headers are honoured", func() {
			headers := L.NewTable()
			headers.RawSetString("Referer", lua.LString("https://example.com"))

			tbl := L.NewTable()
			tbl.RawSetString("video", lua.LString("https://cdn/v.mp4"))
			tbl.RawSetString("container", lua.LString("mp4"))
			tbl.RawSetString("tier", lua.LString("480p"))
			tbl.RawSetString("headers", headers)

			media, err := mediaFromTable(tbl, quality)
			So(err, ShouldBeNil)
			So(media.Container, ShouldEqual, source.MP4)
			So(media.Tier, ShouldEqual, source.Tier480P)
			So(media.Headers["Referer"], ShouldEqual, "https://example.com")
		})

		Convey("No video is a missing resource", func() {
			_, err := mediaFromTable(L.NewTable(), quality)
			So(errors.Is(err, source.ErrNoSuchResource), ShouldBeTrue)
		})
	})
}

func TestDimensionFromTable(t *testing.T) {
	Convey("dimensionFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		entry := func(tier string, code int, auth bool) *lua.LTable {
			tbl := L.NewTable()
			tbl.RawSetString("tier", lua.LString(tier))
			tbl.RawSetString("code", lua.LNumber(code))
			tbl.RawSetString("auth", lua.LBool(auth))
			return tbl
		}

		Convey("Should read tiers in order", func() {
			tbl := L.NewTable()
			tbl.Append(entry("480p", 480, false))
			tbl.Append(entry("1080p", 1080, true))

			dims, err := dimensionFromTable(tbl)
			So(err, ShouldBeNil)
			So(len(dims), ShouldEqual, 2)
			So(dims[0].Tier, ShouldEqual, source.Tier480P)
			So(dims[0].Label, ShouldEqual, "480p")
			So(dims[1].Code, ShouldEqual, 1080)
			So(dims[1].Auth, ShouldBeTrue)
		})

		Convey("Should reject unknown tiers", func() {
			tbl := L.NewTable()
			tbl.Append(entry("8k", 1, false))

			_, err := dimensionFromTable(tbl)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestGetStringList(t *testing.T) {
	Convey("getStringList", t, func() {
		L := lua.NewState()
		defer L.Close()

		tbl := L.NewTable()
		tbl.RawSetString("csv", lua.LString("a, b ,c"))
		tbl.RawSetString("arr", list(L, "x", "y"))

		So(getStringList(tbl, "csv"), ShouldResemble, []string{"a", "b", "c"})
		So(getStringList(tbl, "arr"), ShouldResemble, []string{"x", "y"})
		So(getStringList(tbl, "none"), ShouldBeNil)
	})
}

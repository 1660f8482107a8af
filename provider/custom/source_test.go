package custom

import (
	"context"
	"errors"
	"net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/youngoor/youngoor/filesystem"
	"github.com/youngoor/youngoor/source"
)

const script = `
calls = 0

function Valid(url)
	return string.find(url, "https://videos.example.com/", 1, true) == 1
end

function Episodes(url)
	return {
		{ key = "1", title = "First", cover = "https://videos.example.com/1.jpg" },
		{ key = "2", title = "Second" },
	}
end

function Stream(key, tier, format, token)
	calls = calls + 1
	if key == "missing" then
		return { video = {} }
	end
	if key == "boom" then
		error("upstream exploded")
	end
	local t = { video = { "https://cdn.example.com/" .. key .. "/" .. tier .. "." .. format } }
	if token ~= nil then
		t.headers = { Authorization = token }
	end
	return t
end

function Dimension()
	return {
		{ tier = "480p", code = 1 },
		{ tier = "1080p", code = 2, auth = true },
	}
end
`

func TestLuaSource(t *testing.T) {
	filesystem.SetMemMapFs()
	ctx := context.Background()

	Convey("Given a Lua source on disk", t, func() {
		path := "/sources/example.lua"
		So(filesystem.API().WriteFile(path, []byte(script), 0644), ShouldBeNil)

		src, err := LoadSource(path)
		So(err, ShouldBeNil)

		Convey("It is named after the file", func() {
			So(src.Name(), ShouldEqual, "example")
			So(src.ID(), ShouldEqual, "example custom")
		})

		Convey("Valid delegates to the script", func() {
			ok, _ := url.Parse("https://videos.example.com/watch/1")
			other, _ := url.Parse("https://elsewhere.example.com/watch/1")
			So(src.Valid(ok), ShouldBeTrue)
			So(src.Valid(other), ShouldBeFalse)
		})

		Convey("Episodes keep the script order", func() {
			u, _ := url.Parse("https://videos.example.com/watch/1")
			episodes, err := src.Episodes(ctx, u)
			So(err, ShouldBeNil)
			So(len(episodes), ShouldEqual, 2)
			So(episodes[0].Title, ShouldEqual, "First")
			So(episodes[0].Cover.MustGet(), ShouldEqual, "https://videos.example.com/1.jpg")
			So(episodes[1].Index, ShouldEqual, 2)
			So(episodes[1].Source, ShouldEqual, src)
		})

		Convey("Dimension comes from the script", func() {
			dims := src.Dimension()
			So(len(dims), ShouldEqual, 2)
			So(dims[1].Auth, ShouldBeTrue)
		})

		Convey("Stream passes tier and format", func() {
			media, err := src.Stream(ctx, &source.Episode{Key: "1", Index: 1, Title: "First"}, source.Quality{Tier: source.Tier480P, Container: source.MP4})
			So(err, ShouldBeNil)
			So(media.Video, ShouldResemble, []string{"https://cdn.example.com/1/480p.mp4"})
			So(media.Container, ShouldEqual, source.MP4)
			So(media.Title, ShouldEqual, "First")
		})

		Convey("A locked tier needs a token and is refused before the script runs", func() {
			episode := &source.Episode{Key: "1", Index: 1}
			quality := source.Quality{Tier: source.Tier1080P, Container: source.DASH}

			_, err := src.Stream(ctx, episode, quality)
			So(errors.Is(err, source.ErrNeedsAuthentication), ShouldBeTrue)

			src.SetToken("secret")
			So(src.Token().MustGet(), ShouldEqual, "secret")

			media, err := src.Stream(ctx, episode, quality)
			So(err, ShouldBeNil)
			So(media.Headers["Authorization"], ShouldEqual, "secret")
		})

		Convey("A tier the script does not list is missing", func() {
			_, err := src.Stream(ctx, &source.Episode{Key: "1"}, source.Quality{Tier: source.Tier4K, Container: source.DASH})
			So(errors.Is(err, source.ErrNoSuchResource), ShouldBeTrue)
		})

		Convey("Script failures map to the error kinds", func() {
			quality := source.Quality{Tier: source.Tier480P, Container: source.FLV}

			_, err := src.Stream(ctx, &source.Episode{Key: "missing"}, quality)
			So(errors.Is(err, source.ErrNoSuchResource), ShouldBeTrue)

			_, err = src.Stream(ctx, &source.Episode{Key: "boom"}, quality)
			So(errors.Is(err, source.ErrRequest), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "upstream exploded")
		})
	})

	Convey("Given a script missing a required function", t, func() {
		path := "/sources/partial.lua"
		So(filesystem.API().WriteFile(path, []byte(`function Valid(url) return true end`), 0644), ShouldBeNil)

		_, err := LoadSource(path)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "Episodes")
	})
}

package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/youngoor/youngoor/filesystem"
	"github.com/youngoor/youngoor/key"
	"github.com/youngoor/youngoor/source"
	"github.com/youngoor/youngoor/where"
)

func init() {
	filesystem.SetMemMapFs()
}

type hostSource struct {
	id    string
	host  string
	token mo.Option[string]
}

func (s *hostSource) Name() string                 { return strings.ToUpper(s.id) }
func (s *hostSource) ID() string                   { return s.id }
func (s *hostSource) Valid(u *url.URL) bool        { return strings.HasSuffix(u.Hostname(), s.host) }
func (s *hostSource) Dimension() []source.Dimension { return nil }
func (s *hostSource) SetToken(token string)        { s.token = mo.Some(token) }
func (s *hostSource) Token() mo.Option[string]     { return s.token }

func (s *hostSource) Episodes(context.Context, *url.URL) ([]*source.Episode, error) {
	return []*source.Episode{{Key: s.id, Index: 1}}, nil
}

func (s *hostSource) Stream(_ context.Context, e *source.Episode, q source.Quality) (*source.Media, error) {
	return &source.Media{Title: e.Key, Video: []string{"https://cdn/" + e.Key}, Tier: q.Tier, Container: q.Container}, nil
}

func TestRegistry(t *testing.T) {
	Convey("Given two sources that both accept a host", t, func() {
		first := &hostSource{id: "first", host: "example.com"}
		second := &hostSource{id: "second", host: "example.com"}
		narrow := &hostSource{id: "narrow", host: "videos.test"}
		registry := NewRegistry(first, second, narrow)

		Convey("The first registered wins", func() {
			u, _ := url.Parse("https://www.example.com/a")
			src, ok := registry.Dispatch(u).Get()
			So(ok, ShouldBeTrue)
			So(src.ID(), ShouldEqual, "first")
		})

		Convey("Dispatch is repeatable", func() {
			u, _ := url.Parse("https://videos.test/a")
			So(registry.Dispatch(u).MustGet().ID(), ShouldEqual, "narrow")
			So(registry.Dispatch(u).MustGet().ID(), ShouldEqual, "narrow")
		})

		Convey("Nothing matches an unknown host", func() {
			u, _ := url.Parse("https://unknown.org/a")
			So(registry.Dispatch(u).IsAbsent(), ShouldBeTrue)

			_, err := registry.Resolve(context.Background(), u, source.Quality{Tier: source.Tier480P, Container: source.FLV})
			So(errors.Is(err, source.ErrInvalidURL), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "unknown.org")
		})

		Convey("Resolve goes through the matching source", func() {
			u, _ := url.Parse("https://videos.test/a")
			seq, err := registry.Resolve(context.Background(), u, source.Quality{Tier: source.Tier480P, Container: source.FLV})
			So(err, ShouldBeNil)

			media, err := seq.Collect(context.Background())
			So(err, ShouldBeNil)
			So(media[0].Title, ShouldEqual, "narrow")
		})

		Convey("Duplicate IDs are ignored", func() {
			registry.Register(&hostSource{id: "first", host: "other.com"})
			So(len(registry.Sources()), ShouldEqual, 3)
		})

		Convey("Lookup accepts IDs and names", func() {
			So(registry.Lookup("second").IsPresent(), ShouldBeTrue)
			So(registry.Lookup("NARROW").IsPresent(), ShouldBeTrue)
			So(registry.Lookup("missing").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given providers and a token store", t, func() {
		providers := []*Provider{
			{ID: "a", Name: "A", CreateSource: func() (source.Source, error) { return &hostSource{id: "a", host: "a.test"}, nil }},
			{ID: "broken", Name: "Broken", CreateSource: func() (source.Source, error) { return nil, errors.New("syntax error") }},
			{ID: "b", Name: "B", CreateSource: func() (source.Source, error) { return &hostSource{id: "b", host: "b.test"}, nil }},
		}
		tokens := func(id string) mo.Option[string] {
			if id == "b" {
				return mo.Some("token-b")
			}
			return mo.None[string]()
		}

		registry := Load(providers, tokens)

		Convey("Broken providers are skipped without reordering the others", func() {
			sources := registry.Sources()
			So(len(sources), ShouldEqual, 2)
			So(sources[0].ID(), ShouldEqual, "a")
			So(sources[1].ID(), ShouldEqual, "b")
		})

		Convey("Stored tokens are handed to their source", func() {
			So(registry.Lookup("a").MustGet().Token().IsAbsent(), ShouldBeTrue)
			So(registry.Lookup("b").MustGet().Token().MustGet(), ShouldEqual, "token-b")
		})
	})
}

func TestGet(t *testing.T) {
	Convey("Given the built-in providers", t, func() {
		viper.Set(key.SourcesCustom, false)

		Convey("Bilibili is found by name or ID", func() {
			p, ok := Get("bilibili")
			So(ok, ShouldBeTrue)
			So(p.Name, ShouldEqual, "Bilibili")
			So(p.IsCustom, ShouldBeFalse)

			src, err := p.CreateSource()
			So(err, ShouldBeNil)
			So(src.ID(), ShouldEqual, "bilibili")
		})

		Convey("An invalid provider is not found", func() {
			_, ok := Get("kek")
			So(ok, ShouldBeFalse)
		})

		Convey("A typo suggests the closest name", func() {
			So(Closest("bilibli").MustGet(), ShouldEqual, "Bilibili")
		})
	})

	Convey("Given a Lua source in the sources directory", t, func() {
		viper.Set(key.SourcesCustom, true)
		defer viper.Set(key.SourcesCustom, false)

		path := filepath.Join(where.Sources(), "example.lua")
		So(filesystem.API().WriteFile(path, []byte("-- empty"), 0644), ShouldBeNil)
		So(filesystem.API().WriteFile(filepath.Join(where.Sources(), "notes.txt"), []byte("x"), 0644), ShouldBeNil)

		Convey("It is listed after the built-ins", func() {
			all := All()
			So(all[0].ID, ShouldEqual, "bilibili")

			p, ok := Get("example")
			So(ok, ShouldBeTrue)
			So(p.IsCustom, ShouldBeTrue)
			So(p.ID, ShouldEqual, "example custom")
		})

		Convey("Only .lua files are listed", func() {
			customs := Customs()
			for _, p := range customs {
				So(p.Name, ShouldNotEqual, "notes")
			}
		})
	})
}

func TestInstall(t *testing.T) {
	Convey("Given a server hosting a Lua source", t, func() {
		body := "function Valid(url) return false end"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/sources/my source.lua" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		ctx := context.Background()
		_ = filesystem.API().Remove(filepath.Join(where.Sources(), "my_source.lua"))

		Convey("It is written to the sources directory", func() {
			path, updated, err := Install(ctx, server.Client(), server.URL+"/sources/my%20source.lua")
			So(err, ShouldBeNil)
			So(updated, ShouldBeTrue)
			So(filepath.Base(path), ShouldEqual, "my_source.lua")

			content, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, body)

			Convey("Installing it again changes nothing", func() {
				_, updated, err := Install(ctx, server.Client(), server.URL+"/sources/my%20source.lua")
				So(err, ShouldBeNil)
				So(updated, ShouldBeFalse)
			})
		})

		Convey("A missing file is an error", func() {
			_, _, err := Install(ctx, server.Client(), server.URL+"/sources/other.lua")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Not Found")
		})

		Convey("Non-Lua URLs are rejected", func() {
			_, _, err := Install(ctx, server.Client(), server.URL+"/index.html")
			So(err, ShouldNotBeNil)
		})
	})
}

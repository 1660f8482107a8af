package bilibili

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/youngoor/youngoor/source"
)

const (
	endpointPages   = "/x/player/pagelist"
	endpointReview  = "/pgc/review/user"
	endpointSection = "/pgc/web/season/section"
)

// page is one part of a video.
type page struct {
	CID       int64  `json:"cid"`
	Page      int    `json:"page"`
	From      string `json:"from"`
	Part      string `json:"part"`
	Duration  int    `json:"duration"`
	Vid       string `json:"vid"`
	Weblink   string `json:"weblink"`
	Dimension struct {
		Width  int `json:"width"`
		Height int `json:"height"`
		Rotate int `json:"rotate"`
	} `json:"dimension"`
}

// review is the media lookup translating an md identifier into a season.
type review struct {
	Media struct {
		MediaID  int64  `json:"media_id"`
		SeasonID int64  `json:"season_id"`
		Title    string `json:"title"`
		Cover    string `json:"cover"`
		Evaluate string `json:"evaluate"`
	} `json:"media"`
}

type section struct {
	MainSection struct {
		ID       int64            `json:"id"`
		Title    string           `json:"title"`
		Episodes []sectionEpisode `json:"episodes"`
	} `json:"main_section"`
}

type sectionEpisode struct {
	ID        int64  `json:"id"`
	AID       int64  `json:"aid"`
	CID       int64  `json:"cid"`
	Cover     string `json:"cover"`
	Title     string `json:"title"`
	LongTitle string `json:"long_title"`
	Evaluate  string `json:"evaluate"`
	Badge     string `json:"badge"`
	ShareURL  string `json:"share_url"`
}

// Episodes lists the parts of a video or the episodes of a series.
func (s *Source) Episodes(ctx context.Context, u *url.URL) ([]*source.Episode, error) {
	id, ok := Classify(u).Get()
	if !ok {
		return nil, source.InvalidURL(source.Address(u))
	}

	switch id := id.(type) {
	case VideoID:
		return s.videoEpisodes(ctx, id)
	case SeriesID:
		return s.seriesEpisodes(ctx, id)
	default:
		return nil, source.InvalidURL(source.Address(u))
	}
}

func (s *Source) videoEpisodes(ctx context.Context, bvid VideoID) ([]*source.Episode, error) {
	body, requestURL, err := s.get(ctx, endpointPages, url.Values{"bvid": {string(bvid)}}, false)
	if err != nil {
		return nil, err
	}

	pages, err := require[[]page](body, requestURL)
	if err != nil {
		return nil, err
	}

	return lo.Map(pages, func(p page, i int) *source.Episode {
		return &source.Episode{
			Key: streamKey(url.Values{
				"bvid": {string(bvid)},
				"cid":  {strconv.FormatInt(p.CID, 10)},
			}),
			Index:    i + 1,
			Title:    p.Part,
			Duration: time.Duration(p.Duration) * time.Second,
			Cover:    mo.None[string](),
			Source:   s,
		}
	}), nil
}

func (s *Source) seriesEpisodes(ctx context.Context, media SeriesID) ([]*source.Episode, error) {
	body, requestURL, err := s.get(ctx, endpointReview, url.Values{"media_id": {strconv.FormatInt(int64(media), 10)}}, false)
	if err != nil {
		return nil, err
	}

	info, err := require[review](body, requestURL)
	if err != nil {
		return nil, err
	}
	if info.Media.SeasonID == 0 {
		return nil, source.NoSuchResource(requestURL)
	}

	body, requestURL, err = s.get(ctx, endpointSection, url.Values{"season_id": {strconv.FormatInt(info.Media.SeasonID, 10)}}, false)
	if err != nil {
		return nil, err
	}

	sec, err := require[section](body, requestURL)
	if err != nil {
		return nil, err
	}
	if len(sec.MainSection.Episodes) == 0 {
		return nil, source.NoSuchResource(requestURL)
	}

	return lo.Map(sec.MainSection.Episodes, func(e sectionEpisode, i int) *source.Episode {
		return &source.Episode{
			Key: streamKey(url.Values{
				"avid": {strconv.FormatInt(e.AID, 10)},
				"cid":  {strconv.FormatInt(e.CID, 10)},
			}),
			Index:       i + 1,
			Title:       episodeTitle(e),
			Cover:       optional(e.Cover),
			Description: optional(lo.CoalesceOrEmpty(e.Evaluate, info.Media.Evaluate)),
			Source:      s,
		}
	}), nil
}

// episodeTitle joins the long title and the short one ("第1话"), skipping empty halves.
func episodeTitle(e sectionEpisode) string {
	parts := lo.Filter([]string{strings.TrimSpace(e.LongTitle), strings.TrimSpace(e.Title)}, func(s string, _ int) bool {
		return s != ""
	})
	return strings.Join(parts, " ")
}

func optional(s string) mo.Option[string] {
	if s == "" {
		return mo.None[string]()
	}
	return mo.Some(s)
}

// streamKey encodes the playurl parameters identifying an episode.
func streamKey(params url.Values) string {
	return params.Encode()
}

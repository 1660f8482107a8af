package bilibili

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/youngoor/youngoor/constant"
	"github.com/youngoor/youngoor/source"
)

const endpointPlayURL = "/x/player/playurl"

type playURL struct {
	Quality       int       `json:"quality"`
	Format        string    `json:"format"`
	AcceptQuality []int     `json:"accept_quality"`
	DURL          []segment `json:"durl"`
	Dash          *dash     `json:"dash"`
}

// segment is one piece of a muxed FLV/MP4 stream.
type segment struct {
	Order     int      `json:"order"`
	Length    int64    `json:"length"`
	Size      int64    `json:"size"`
	URL       string   `json:"url"`
	BackupURL []string `json:"backup_url"`
}

type dash struct {
	Duration int     `json:"duration"`
	Video    []track `json:"video"`
	Audio    []track `json:"audio"`
}

// track is a DASH representation. For video ID is the qn code it was encoded at.
type track struct {
	ID        int      `json:"id"`
	BaseURL   string   `json:"base_url"`
	BackupURL []string `json:"backup_url"`
	Bandwidth int      `json:"bandwidth"`
	Codecs    string   `json:"codecs"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
}

// Stream resolves the stream URLs of one episode.
func (s *Source) Stream(ctx context.Context, episode *source.Episode, quality source.Quality) (*source.Media, error) {
	params, err := url.ParseQuery(episode.Key)
	if err != nil || params.Get("cid") == "" {
		return nil, source.RequestError(fmt.Sprintf("malformed episode key %q", episode.Key))
	}

	if _, ok := tiers[quality.Tier]; !ok {
		return nil, source.RequestError(fmt.Sprintf("unsupported quality %s", quality.Tier))
	}

	qn, fnval := codes(quality)
	params.Set("qn", strconv.Itoa(qn))
	params.Set("fnval", strconv.Itoa(fnval))
	params.Set("fnver", "0")
	params.Set("fourk", "1")

	body, requestURL, err := s.get(ctx, endpointPlayURL, params, needsAuth(quality.Tier))
	if err != nil {
		return nil, err
	}

	info, err := require[playURL](body, requestURL)
	if err != nil {
		return nil, err
	}

	media := &source.Media{
		Title:       episode.String(),
		Index:       episode.Index,
		Cover:       episode.Cover.OrEmpty(),
		Description: episode.Description.OrEmpty(),
		Headers: map[string]string{
			"Referer":    referer,
			"User-Agent": constant.UserAgent,
		},
	}

	if err := selectStreams(media, info, qn, quality, requestURL); err != nil {
		return nil, err
	}
	return media, nil
}

// selectStreams fills the URLs of media from whichever shape the response has.
func selectStreams(media *source.Media, info playURL, qn int, quality source.Quality, requestURL string) error {
	switch {
	case len(info.DURL) > 0:
		media.Video = lo.FilterMap(info.DURL, func(seg segment, _ int) (string, bool) {
			return seg.URL, seg.URL != ""
		})
		if len(media.Video) == 0 {
			return source.NoSuchResource(fmt.Sprintf("%s: no segment urls", requestURL))
		}
		media.Audio = []string{}
		media.Container = lo.Ternary(strings.HasPrefix(info.Format, "mp4"), source.MP4, source.FLV)
		media.Tier = servedTier(info.Quality, quality.Tier)
		return nil

	case info.Dash != nil && len(info.Dash.Video) > 0:
		video, ok := lo.Find(info.Dash.Video, func(t track) bool {
			return t.ID == qn
		})
		if !ok {
			return source.NoSuchResource(fmt.Sprintf("%s: no %s video track", requestURL, quality.Tier))
		}
		videoURL, ok := video.address().Get()
		if !ok {
			return source.NoSuchResource(fmt.Sprintf("%s: %s video track has no url", requestURL, quality.Tier))
		}

		audio, ok := lo.First(info.Dash.Audio)
		if !ok {
			return source.NoSuchResource(fmt.Sprintf("%s: no audio track", requestURL))
		}
		audioURL, ok := audio.address().Get()
		if !ok {
			return source.NoSuchResource(fmt.Sprintf("%s: audio track has no url", requestURL))
		}

		media.Video = []string{videoURL}
		media.Audio = []string{audioURL}
		media.Container = source.DASH
		media.Tier = quality.Tier
		return nil

	default:
		return source.NoSuchResource(requestURL)
	}
}

// address is the base url of t, or its first backup when the base is empty.
func (t track) address() mo.Option[string] {
	if t.BaseURL != "" {
		return mo.Some(t.BaseURL)
	}
	if backup, ok := lo.First(t.BackupURL); ok && backup != "" {
		return mo.Some(backup)
	}
	return mo.None[string]()
}

func servedTier(qn int, fallback source.Tier) source.Tier {
	if t, ok := tierOf(qn); ok {
		return t
	}
	return fallback
}

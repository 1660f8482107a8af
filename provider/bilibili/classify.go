package bilibili

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/youngoor/youngoor/util"
)

// ResourceID identifies what a page URL points at. It is either a VideoID or a SeriesID.
type ResourceID interface {
	isResource()
}

// VideoID is the BV identifier of a single, possibly multi-part, video.
type VideoID string

// SeriesID is the media identifier of a series ("md" pages).
type SeriesID int64

func (VideoID) isResource()  {}
func (SeriesID) isResource() {}

var (
	videoPath  = regexp.MustCompile(`^/video/(?P<bvid>BV[0-9A-Za-z]+)/?$`)
	seriesPath = regexp.MustCompile(`^/bangumi/media/md(?P<media>\d+)/?$`)
)

var hosts = []string{"bilibili.com", "www.bilibili.com"}

// Classify maps a page URL to the resource it addresses.
//
// Episode pages (/bangumi/play/ep...) are not recognized.
func Classify(u *url.URL) mo.Option[ResourceID] {
	if u == nil {
		return mo.None[ResourceID]()
	}

	host := u.Hostname()
	known := false
	for _, h := range hosts {
		if strings.EqualFold(host, h) {
			known = true
			break
		}
	}
	if !known {
		return mo.None[ResourceID]()
	}

	if groups := util.ReGroups(videoPath, u.Path); groups["bvid"] != "" {
		return mo.Some[ResourceID](VideoID(groups["bvid"]))
	}

	if groups := util.ReGroups(seriesPath, u.Path); groups["media"] != "" {
		id, err := strconv.ParseInt(groups["media"], 10, 64)
		if err != nil {
			return mo.None[ResourceID]()
		}
		return mo.Some[ResourceID](SeriesID(id))
	}

	return mo.None[ResourceID]()
}

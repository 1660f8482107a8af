// Package inline implements the non-interactive resolve mode: page URL in, stream URLs out.
package inline

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/youngoor/youngoor/source"
)

// EpisodesFilter narrows the episodes of a page before their streams are resolved.
type EpisodesFilter func([]*source.Episode) ([]*source.Episode, error)

// Dispatcher finds the source responsible for a page URL.
type Dispatcher interface {
	Dispatch(u *url.URL) mo.Option[source.Source]
}

// Progress is told about every episode as it is resolved.
type Progress interface {
	Start(total int)
	Step(done int, episode *source.Episode)
	Stop()
}

type Options struct {
	Out     io.Writer
	Sources Dispatcher
	URL     string
	Quality source.Quality
	Json    bool
	// Width wraps descriptions in text output. Zero disables wrapping.
	Width          int
	EpisodesFilter mo.Option[EpisodesFilter]
	Progress       mo.Option[Progress]
}

// ParseEpisodesFilter parses an episode selector.
//
//	all      every episode
//	first    the first episode
//	last     the last episode
//	N        the episode with index N
//	A-B      episodes with indices from A to B, inclusive
//	@text@   episodes whose title contains text, ignoring case
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	description = strings.TrimSpace(description)

	switch description {
	case "", "all":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return episodes, nil
		}, nil
	case "first":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			if len(episodes) == 0 {
				return episodes, nil
			}
			return episodes[:1], nil
		}, nil
	case "last":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			if len(episodes) == 0 {
				return episodes, nil
			}
			return episodes[len(episodes)-1:], nil
		}, nil
	}

	if len(description) >= 2 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Title), sub)
			}), nil
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		a, errA := strconv.ParseUint(from, 10, 16)
		b, errB := strconv.ParseUint(to, 10, 16)
		if errA != nil || errB != nil {
			return nil, fmt.Errorf("invalid episode range: %s", description)
		}
		if a > b {
			return nil, fmt.Errorf("invalid episode range: %d is after %d", a, b)
		}

		return between(int(a), int(b)), nil
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return between(int(idx), int(idx)), nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}

func between(from, to int) EpisodesFilter {
	return func(episodes []*source.Episode) ([]*source.Episode, error) {
		return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
			return e.Index >= from && e.Index <= to
		}), nil
	}
}

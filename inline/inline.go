package inline

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/youngoor/youngoor/log"
	"github.com/youngoor/youngoor/source"
	"github.com/youngoor/youngoor/util"
)

// Run resolves options.URL and writes its media to options.Out.
//
// Text output is written as each episode resolves. Json output is written
// once, after every episode resolved. The first failure stops the run.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	u, err := ParseURL(options.URL)
	if err != nil {
		return err
	}

	src, ok := options.Sources.Dispatch(u).Get()
	if !ok {
		return source.InvalidURL(options.URL)
	}

	log.WithFields(map[string]any{
		"url":     u.String(),
		"source":  src.ID(),
		"quality": options.Quality.String(),
	}).Info("resolving")

	episodes, err := src.Episodes(ctx, u)
	if err != nil {
		return err
	}

	if filter, ok := options.EpisodesFilter.Get(); ok {
		episodes, err = filter(episodes)
		if err != nil {
			return err
		}
	}

	seq := source.Streams(src, episodes, options.Quality)

	progress, hasProgress := options.Progress.Get()
	if hasProgress {
		progress.Start(seq.Len())
		defer progress.Stop()
	}

	output := &Output{
		URL:     u.String(),
		Source:  src.Name(),
		Quality: options.Quality,
	}

	for media, err := range seq.All(ctx) {
		if err != nil {
			return err
		}

		if hasProgress {
			progress.Step(seq.Position(), episodes[seq.Position()-1])
		}

		if options.Json {
			output.Result = append(output.Result, media)
			continue
		}

		if err := writeText(options.Out, media, options.Width); err != nil {
			return err
		}
	}

	log.Infof("resolved %s", util.Quantify(seq.Position(), "episode", "episodes"))

	if options.Json {
		return writeJson(options.Out, output)
	}
	return nil
}

// ParseURL parses a page URL given on the command line. A missing scheme defaults to https.
func ParseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, source.InvalidURL(raw)
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || !lo.Contains([]string{"http", "https"}, strings.ToLower(u.Scheme)) {
		return nil, source.InvalidURL(raw)
	}
	return u, nil
}

package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/youngoor/youngoor/source"
)

// writeText prints one media block:
//
//	# 1 Title [1080p dash]
//	video <url>
//	audio <url>
func writeText(out io.Writer, media *source.Media, width int) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %d %s\n", media.Index, media)
	if media.Description != "" {
		description := media.Description
		if width > 2 {
			description = wordwrap.String(description, width-2)
		}
		b.WriteString(indent.String(description, 2))
		b.WriteString("\n")
	}

	for _, u := range media.Video {
		fmt.Fprintf(&b, "video %s\n", u)
	}
	for _, u := range media.Audio {
		fmt.Fprintf(&b, "audio %s\n", u)
	}

	_, err := io.WriteString(out, b.String())
	return err
}

package source

import (
	"fmt"
	"time"

	"github.com/samber/mo"
)

// Episode is one playable part of a page: a part of a multi-part video or an episode of a series.
type Episode struct {
	// Key identifies the episode to its source when resolving streams. Opaque to everything else.
	Key string `json:"key"`
	// Index is the 1-based position in the platform's list.
	Index int `json:"index"`
	// Title is the display title.
	Title string `json:"title"`
	// Duration is zero when the platform does not report it.
	Duration time.Duration `json:"-"`
	// Cover is the episode thumbnail.
	Cover mo.Option[string] `json:"-"`
	// Description is a synopsis passed through from the platform when it provides one.
	Description mo.Option[string] `json:"-"`

	Source Source `json:"-"`
}

// String returns the display title, falling back to the index.
func (e *Episode) String() string {
	if e.Title != "" {
		return e.Title
	}
	return fmt.Sprintf("Episode %d", e.Index)
}

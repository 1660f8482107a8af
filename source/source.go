// Package source defines the contract every platform implements and the types flowing through it.
package source

import (
	"context"
	"net/url"

	"github.com/samber/mo"
)

// Source resolves page URLs of one platform into playable media.
//
// A Source holds at most one credential. Implementations do not synchronize
// access to it; callers that share a Source across goroutines must.
type Source interface {
	// Name returns the human readable name of the platform.
	Name() string

	// ID returns the stable identifier of the source, used for credentials and lookups.
	ID() string

	// Valid reports whether the page URL belongs to this source. It never touches the network.
	Valid(u *url.URL) bool

	// Episodes lists the episodes behind a page URL in the order the platform returns them.
	Episodes(ctx context.Context, u *url.URL) ([]*Episode, error)

	// Stream resolves the stream URLs of one episode at the requested quality.
	Stream(ctx context.Context, episode *Episode, quality Quality) (*Media, error)

	// Dimension lists the supported tiers, lowest first.
	Dimension() []Dimension

	// SetToken replaces the credential.
	SetToken(token string)

	// Token returns the credential, if any.
	Token() mo.Option[string]
}

// Resolve checks that src recognizes u, fetches its episodes and returns a
// sequence resolving their streams on demand.
func Resolve(ctx context.Context, src Source, u *url.URL, quality Quality) (*Sequence, error) {
	if !src.Valid(u) {
		return nil, InvalidURL(Address(u))
	}

	episodes, err := src.Episodes(ctx, u)
	if err != nil {
		return nil, err
	}

	return Streams(src, episodes, quality), nil
}

// Streams returns a sequence resolving the given episodes of src at quality.
func Streams(src Source, episodes []*Episode, quality Quality) *Sequence {
	return NewSequence(episodes, func(ctx context.Context, episode *Episode) (*Media, error) {
		return src.Stream(ctx, episode, quality)
	})
}

// Address is u as a string, or empty for a nil u.
func Address(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

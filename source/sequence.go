package source

import (
	"context"
	"iter"
)

// ResolveFunc resolves one episode.
type ResolveFunc func(ctx context.Context, episode *Episode) (*Media, error)

// Sequence yields resolved media one episode at a time.
//
// Each call to Next resolves exactly one episode; nothing is fetched for
// episodes that are never pulled. The first failure ends the sequence.
// A Sequence cannot be restarted and is not safe for concurrent use.
//
//	for seq.Next(ctx) {
//		use(seq.Media())
//	}
//	if err := seq.Err(); err != nil { ... }
type Sequence struct {
	episodes []*Episode
	resolve  ResolveFunc

	pos     int
	current *Media
	err     error
}

// NewSequence returns a sequence over episodes.
func NewSequence(episodes []*Episode, resolve ResolveFunc) *Sequence {
	return &Sequence{
		episodes: episodes,
		resolve:  resolve,
	}
}

// Len returns the number of episodes the sequence covers.
func (s *Sequence) Len() int {
	return len(s.episodes)
}

// Episodes returns the episodes the sequence covers.
func (s *Sequence) Episodes() []*Episode {
	return append([]*Episode(nil), s.episodes...)
}

// Position returns how many episodes have been pulled so far.
func (s *Sequence) Position() int {
	return s.pos
}

// Next resolves the next episode. It returns false when the sequence is
// drained or has failed.
func (s *Sequence) Next(ctx context.Context) bool {
	s.current = nil
	if s.err != nil || s.pos >= len(s.episodes) {
		return false
	}

	if err := ctx.Err(); err != nil {
		s.err = err
		return false
	}

	episode := s.episodes[s.pos]
	s.pos++

	media, err := s.resolve(ctx, episode)
	if err != nil {
		s.err = err
		return false
	}

	s.current = media
	return true
}

// Media returns the media resolved by the last successful Next.
func (s *Sequence) Media() *Media {
	return s.current
}

// Err returns the failure that ended the sequence, if any.
func (s *Sequence) Err() error {
	return s.err
}

// All adapts the sequence to a range-over-func iterator. A failure is
// yielded once, as the last pair, with a nil media.
func (s *Sequence) All(ctx context.Context) iter.Seq2[*Media, error] {
	return func(yield func(*Media, error) bool) {
		for s.Next(ctx) {
			if !yield(s.Media(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Collect drains the sequence. On failure it returns what was resolved before it.
func (s *Sequence) Collect(ctx context.Context) ([]*Media, error) {
	var media []*Media
	for s.Next(ctx) {
		media = append(media, s.Media())
	}
	return media, s.Err()
}

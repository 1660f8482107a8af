package provider

import (
	"context"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/youngoor/youngoor/log"
	"github.com/youngoor/youngoor/source"
)

// Registry holds sources in registration order and hands a URL to the first one that recognizes it.
type Registry struct {
	sources []source.Source
}

// NewRegistry returns a registry of sources, in the given order.
func NewRegistry(sources ...source.Source) *Registry {
	r := &Registry{}
	for _, s := range sources {
		r.Register(s)
	}
	return r
}

// Register appends src. A source whose ID is already registered is ignored.
func (r *Registry) Register(src source.Source) {
	if src == nil || r.Lookup(src.ID()).IsPresent() {
		return
	}
	r.sources = append(r.sources, src)
}

// Sources returns the registered sources in dispatch order.
func (r *Registry) Sources() []source.Source {
	return append([]source.Source(nil), r.sources...)
}

// Dispatch returns the first source whose Valid accepts u.
func (r *Registry) Dispatch(u *url.URL) mo.Option[source.Source] {
	src, ok := lo.Find(r.sources, func(s source.Source) bool {
		return s.Valid(u)
	})
	if !ok {
		return mo.None[source.Source]()
	}
	return mo.Some(src)
}

// Lookup finds a registered source by ID or name, ignoring case.
func (r *Registry) Lookup(id string) mo.Option[source.Source] {
	src, ok := lo.Find(r.sources, func(s source.Source) bool {
		return strings.EqualFold(s.ID(), id) || strings.EqualFold(s.Name(), id)
	})
	if !ok {
		return mo.None[source.Source]()
	}
	return mo.Some(src)
}

// Resolve dispatches u and resolves it with the matching source.
func (r *Registry) Resolve(ctx context.Context, u *url.URL, quality source.Quality) (*source.Sequence, error) {
	src, ok := r.Dispatch(u).Get()
	if !ok {
		return nil, source.InvalidURL(source.Address(u))
	}

	log.Infof("resolving %s with %s at %s", u, src.Name(), quality)
	return source.Resolve(ctx, src, u, quality)
}

// Load instantiates providers into a registry and hands each source its stored
// credential. Sources that fail to load are logged and skipped.
func Load(providers []*Provider, token func(id string) mo.Option[string]) *Registry {
	r := &Registry{}
	for _, p := range providers {
		src, err := p.CreateSource()
		if err != nil {
			log.Errorf("load source %s: %s", p.Name, err)
			continue
		}

		if token != nil {
			if t, ok := token(src.ID()).Get(); ok {
				src.SetToken(t)
			}
		}
		r.Register(src)
	}
	return r
}

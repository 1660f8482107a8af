// Package bilibili resolves bilibili.com video and series pages.
package bilibili

import (
	"net/http"
	"net/url"

	"github.com/samber/mo"
	"github.com/youngoor/youngoor/network"
	"github.com/youngoor/youngoor/source"
)

const (
	ID   = "bilibili"
	Name = "Bilibili"

	// LoginURL is where a user signs in to obtain the SESSDATA cookie.
	LoginURL = "https://passport.bilibili.com/login"
)

// Options configures a Source. Zero values fall back to the shared client
// and the public API.
type Options struct {
	Client  *http.Client
	APIBase string
}

// Source is the bilibili implementation of source.Source.
type Source struct {
	client *http.Client
	base   string
	token  mo.Option[string]
}

// New returns a Source without a credential.
func New(options *Options) *Source {
	s := &Source{
		client: network.ForSources(),
		base:   apiBase,
		token:  mo.None[string](),
	}

	if options == nil {
		return s
	}
	if options.Client != nil {
		s.client = options.Client
	}
	if options.APIBase != "" {
		s.base = options.APIBase
	}
	return s
}

func (s *Source) Name() string {
	return Name
}

func (s *Source) ID() string {
	return ID
}

// Valid reports whether u is a video or series page.
func (s *Source) Valid(u *url.URL) bool {
	return Classify(u).IsPresent()
}

// Dimension lists every tier with its qn code. Tiers from 720P60 upwards need a credential.
func (s *Source) Dimension() []source.Dimension {
	return dimension()
}

// SetToken sets the SESSDATA cookie, or a full cookie string, sent with every request.
func (s *Source) SetToken(token string) {
	if token == "" {
		s.token = mo.None[string]()
		return
	}
	s.token = mo.Some(token)
}

func (s *Source) Token() mo.Option[string] {
	return s.token
}

var _ source.Source = (*Source)(nil)

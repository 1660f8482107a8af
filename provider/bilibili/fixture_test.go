package bilibili

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// countingTransport records every request that reaches the network.
type countingTransport struct {
	mu       sync.Mutex
	requests []*http.Request
	next     http.RoundTripper
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()
	return c.next.RoundTrip(req)
}

func (c *countingTransport) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

func (c *countingTransport) paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	paths := make([]string, len(c.requests))
	for i, r := range c.requests {
		paths[i] = r.URL.Path
	}
	return paths
}

func (c *countingTransport) last() *http.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		return nil
	}
	return c.requests[len(c.requests)-1]
}

// fixture serves canned bodies keyed by path. A route may instead hold a status code.
type fixture struct {
	bodies   map[string]string
	statuses map[string]int
}

func (f *fixture) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if status, ok := f.statuses[r.URL.Path]; ok {
		w.WriteHeader(status)
		return
	}
	body, ok := f.bodies[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func newTestSource(t *testing.T, f *fixture) (*Source, *countingTransport) {
	server := httptest.NewServer(f)
	t.Cleanup(server.Close)

	transport := &countingTransport{next: http.DefaultTransport}
	src := New(&Options{
		Client:  &http.Client{Transport: transport},
		APIBase: server.URL,
	})
	return src, transport
}

func mustParse(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

const (
	pagesBody = `{"code":0,"message":"0","ttl":1,"data":[
		{"cid":1001,"page":1,"from":"vupload","part":"Opening","duration":95,"vid":"","weblink":"","dimension":{"width":1920,"height":1080,"rotate":0}},
		{"cid":1002,"page":2,"from":"vupload","part":"Main feature","duration":1800,"vid":"","weblink":"","dimension":{"width":1920,"height":1080,"rotate":0}}
	]}`

	reviewBody = `{"code":0,"message":"success","result":{"media":{"media_id":28229233,"season_id":33415,"title":"A Series","cover":"https://i0.hdslb.com/series.jpg"}}}`

	sectionBody = `{"code":0,"message":"success","result":{"main_section":{"id":1,"title":"正片","episodes":[
		{"id":340001,"aid":5001,"cid":7001,"cover":"https://i0.hdslb.com/ep1.jpg","title":"1","long_title":"The Beginning","evaluate":"A quiet start"},
		{"id":340002,"aid":5002,"cid":7002,"cover":"https://i0.hdslb.com/ep2.jpg","title":"2","long_title":""}
	]}}}`

	durlBody = `{"code":0,"message":"0","data":{"quality":32,"format":"flv480","accept_quality":[80,64,32,16],
		"durl":[{"order":1,"length":1000,"size":100,"url":"https://upos.example.com/seg1.flv"},{"order":2,"length":1000,"size":100,"url":"https://upos.example.com/seg2.flv"}]}}`

	dashBody = `{"code":0,"message":"0","data":{"quality":80,"format":"flv","accept_quality":[80,64,32,16],"dash":{"duration":1800,
		"video":[
			{"id":64,"base_url":"https://upos.example.com/v64.m4s"},
			{"id":80,"base_url":"https://upos.example.com/v80-avc.m4s"},
			{"id":80,"base_url":"https://upos.example.com/v80-hevc.m4s"}
		],
		"audio":[{"id":30280,"base_url":"https://upos.example.com/a1.m4s"},{"id":30216,"base_url":"https://upos.example.com/a2.m4s"}]}}}`
)

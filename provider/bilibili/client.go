package bilibili

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/youngoor/youngoor/constant"
	"github.com/youngoor/youngoor/log"
	"github.com/youngoor/youngoor/source"
)

const (
	apiBase = "https://api.bilibili.com"
	referer = "https://www.bilibili.com"
)

// get issues one GET to endpoint and returns the body with the URL it was sent to.
func (s *Source) get(ctx context.Context, endpoint string, params url.Values, requiresAuth bool) ([]byte, string, error) {
	requestURL := s.base + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}
	return s.do(ctx, http.MethodGet, requestURL, nil, requiresAuth)
}

// post issues one form POST to endpoint.
func (s *Source) post(ctx context.Context, endpoint string, form url.Values, requiresAuth bool) ([]byte, string, error) {
	return s.do(ctx, http.MethodPost, s.base+endpoint, form, requiresAuth)
}

func (s *Source) do(ctx context.Context, method, requestURL string, form url.Values, requiresAuth bool) ([]byte, string, error) {
	logger := log.WithFields(logrus.Fields{"source": ID, "method": method, "url": requestURL})

	token, authenticated := s.token.Get()
	if requiresAuth && !authenticated {
		logger.Info("refusing request without credential")
		return nil, requestURL, source.NeedsAuthentication(requestURL)
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, requestURL, source.RequestError(err.Error())
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Referer", referer)
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if authenticated {
		req.Header.Set("Cookie", cookie(token))
	}

	logger.Debug("sending request")
	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error(err)
		return nil, requestURL, source.Transport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.WithField("status", resp.StatusCode).Warn("unexpected status")
		return nil, requestURL, source.RequestError(http.StatusText(resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error(err)
		return nil, requestURL, source.Transport(err)
	}

	return data, requestURL, nil
}

// cookie turns a token into a Cookie header value. A bare value is taken
// to be the SESSDATA session cookie; anything containing "=" is sent as is.
func cookie(token string) string {
	if strings.Contains(token, "=") {
		return token
	}
	return "SESSDATA=" + token
}

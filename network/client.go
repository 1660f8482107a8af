// Package network provides the HTTP clients shared by every source.
package network

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/youngoor/youngoor/key"
)

// Client is the HTTP client shared across the application.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// Setup applies the configured timeout to both clients.
func Setup() {
	timeout := time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second
	if timeout <= 0 {
		return
	}
	Client.Timeout = timeout
	TLSClient.Timeout = timeout
}

// ForSources returns the client built-in sources should use.
func ForSources() *http.Client {
	if viper.GetBool(key.NetworkTLSFingerprint) {
		return TLSClient
	}
	return Client
}

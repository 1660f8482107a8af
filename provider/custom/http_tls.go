package custom

import (
	"io"
	"net/http"
	"strings"

	"github.com/youngoor/youngoor/constant"
	"github.com/youngoor/youngoor/network"
	lua "github.com/yuin/gopher-lua"
)

// registerTLSClient exposes network.TLSClient to scripts as the http_tls module:
//
//	http_tls.get(url [, headers])                      -> body
//	http_tls.request({method, url, headers, body})     -> {status, body, headers}
func registerTLSClient(L *lua.LState) {
	mod := L.NewTable()
	L.SetField(mod, "get", L.NewFunction(httpTLSGet))
	L.SetField(mod, "request", L.NewFunction(httpTLSRequest))
	L.SetGlobal("http_tls", mod)
}

func httpTLSGet(L *lua.LState) int {
	rawURL := L.CheckString(1)

	headers := make(map[string]string)
	if tbl := L.OptTable(2, nil); tbl != nil {
		tbl.ForEach(func(k, v lua.LValue) {
			headers[k.String()] = v.String()
		})
	}

	resp, err := doTLSRequest(L, http.MethodGet, rawURL, headers, "")
	if err != nil {
		L.RaiseError("http_tls.get failed: %s", err.Error())
		return 0
	}

	L.Push(lua.LString(resp.body))
	return 1
}

func httpTLSRequest(L *lua.LState) int {
	opts := L.CheckTable(1)

	rawURL := getString(opts, "url")
	if rawURL == "" {
		L.RaiseError("http_tls.request: url is required")
		return 0
	}

	method := getString(opts, "method")
	if method == "" {
		method = http.MethodGet
	}

	resp, err := doTLSRequest(L, strings.ToUpper(method), rawURL, getStringMap(opts, "headers"), getString(opts, "body"))
	if err != nil {
		L.RaiseError("http_tls.request failed: %s", err.Error())
		return 0
	}

	headers := L.NewTable()
	for k := range resp.headers {
		L.SetField(headers, k, lua.LString(resp.headers.Get(k)))
	}

	result := L.NewTable()
	L.SetField(result, "status", lua.LNumber(resp.status))
	L.SetField(result, "body", lua.LString(resp.body))
	L.SetField(result, "headers", headers)
	L.Push(result)
	return 1
}

type tlsResponse struct {
	status  int
	body    string
	headers http.Header
}

func doTLSRequest(L *lua.LState, method, rawURL string, headers map[string]string, body string) (*tlsResponse, error) {
	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, rawURL, reqBody)
	if err != nil {
		return nil, err
	}
	if ctx := L.Context(); ctx != nil {
		req = req.WithContext(ctx)
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := network.TLSClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &tlsResponse{status: resp.StatusCode, body: string(data), headers: resp.Header}, nil
}

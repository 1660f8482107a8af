package bilibili

import (
	"encoding/json"
	"fmt"

	"github.com/samber/mo"
	"github.com/youngoor/youngoor/source"
)

// Status codes with a meaning of their own. Every other non-zero code is a generic request error.
const (
	codeOK          = 0
	codeNotLoggedIn = -101
	codeBadRequest  = -400
	codeNotFound    = -404
)

// envelope wraps every API response. The pgc endpoints carry the payload
// under "result", the others under "data".
type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
	Result  *T     `json:"result"`
}

func (e *envelope[T]) payload() mo.Option[T] {
	switch {
	case e.Data != nil:
		return mo.Some(*e.Data)
	case e.Result != nil:
		return mo.Some(*e.Result)
	default:
		return mo.None[T]()
	}
}

// decode unwraps body. When required is set a successful response without a
// payload is reported as missing at requestURL.
func decode[T any](body []byte, requestURL string, required bool) (mo.Option[T], error) {
	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return mo.None[T](), source.RequestError(fmt.Sprintf("decode %s: %s", requestURL, err))
	}

	switch env.Code {
	case codeOK:
	case codeNotFound:
		return mo.None[T](), source.NoSuchResource(requestURL)
	case codeNotLoggedIn:
		return mo.None[T](), source.NeedsAuthentication(env.Message)
	case codeBadRequest:
		return mo.None[T](), source.RequestError(env.Message)
	default:
		message := env.Message
		if message == "" {
			message = fmt.Sprintf("code %d", env.Code)
		}
		return mo.None[T](), source.RequestError(message)
	}

	payload := env.payload()
	if required && payload.IsAbsent() {
		return payload, source.NoSuchResource(requestURL)
	}
	return payload, nil
}

// require is decode for endpoints whose payload must be present.
func require[T any](body []byte, requestURL string) (T, error) {
	payload, err := decode[T](body, requestURL, true)
	if err != nil {
		var zero T
		return zero, err
	}
	return payload.MustGet(), nil
}

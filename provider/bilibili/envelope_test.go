package bilibili

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/youngoor/youngoor/source"
)

type payload struct {
	Value int `json:"value"`
}

func TestDecode(t *testing.T) {
	const requestURL = "https://api.bilibili.com/x/test"

	Convey("Given response envelopes", t, func() {
		Convey("Code 0 with data yields the payload", func() {
			p, err := decode[payload]([]byte(`{"code":0,"message":"0","data":{"value":7}}`), requestURL, true)
			So(err, ShouldBeNil)
			So(p.MustGet().Value, ShouldEqual, 7)
		})

		Convey("Code 0 with result yields the payload", func() {
			p, err := decode[payload]([]byte(`{"code":0,"message":"success","result":{"value":9}}`), requestURL, true)
			So(err, ShouldBeNil)
			So(p.MustGet().Value, ShouldEqual, 9)
		})

		Convey("Code 0 without payload is missing when required", func() {
			_, err := decode[payload]([]byte(`{"code":0,"message":"0","data":null}`), requestURL, true)
			So(errors.Is(err, source.ErrNoSuchResource), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, requestURL)
		})

		Convey("Code 0 without payload is fine when optional", func() {
			p, err := decode[payload]([]byte(`{"code":0,"message":"0"}`), requestURL, false)
			So(err, ShouldBeNil)
			So(p.IsAbsent(), ShouldBeTrue)
		})

		Convey("Code -400 is a request error with the message", func() {
			_, err := decode[payload]([]byte(`{"code":-400,"message":"请求错误"}`), requestURL, true)
			So(errors.Is(err, source.ErrRequest), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "请求错误")
		})

		Convey("Code -404 is a missing resource at the url", func() {
			_, err := decode[payload]([]byte(`{"code":-404,"message":"啥都木有"}`), requestURL, true)
			So(errors.Is(err, source.ErrNoSuchResource), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, requestURL)
		})

		Convey("Code -101 asks for a credential", func() {
			_, err := decode[payload]([]byte(`{"code":-101,"message":"账号未登录"}`), requestURL, true)
			So(errors.Is(err, source.ErrNeedsAuthentication), ShouldBeTrue)
		})

		Convey("Any other code is a request error", func() {
			_, err := decode[payload]([]byte(`{"code":62002,"message":"稿件不可见"}`), requestURL, true)
			So(errors.Is(err, source.ErrRequest), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "稿件不可见")

			_, err = decode[payload]([]byte(`{"code":-352}`), requestURL, true)
			So(err.Error(), ShouldContainSubstring, "code -352")
		})

		Convey("A body that is not an envelope is a request error", func() {
			_, err := decode[payload]([]byte(`<html>`), requestURL, true)
			So(errors.Is(err, source.ErrRequest), ShouldBeTrue)
		})
	})
}

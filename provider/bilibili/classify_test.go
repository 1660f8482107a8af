package bilibili

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given page URLs", t, func() {
		Convey("A video page yields its BV identifier", func() {
			id, ok := Classify(mustParse("https://www.bilibili.com/video/BV1GJ411x7h7")).Get()
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, VideoID("BV1GJ411x7h7"))
		})

		Convey("The host is matched without case and without www", func() {
			id, ok := Classify(mustParse("https://BiliBili.COM/video/BV1GJ411x7h7/?p=2")).Get()
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, VideoID("BV1GJ411x7h7"))
		})

		Convey("A series media page yields its numeric identifier", func() {
			id, ok := Classify(mustParse("https://www.bilibili.com/bangumi/media/md28229233/")).Get()
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, SeriesID(28229233))
		})

		Convey("Episode pages are not recognized", func() {
			So(Classify(mustParse("https://www.bilibili.com/bangumi/play/ep340001")).IsAbsent(), ShouldBeTrue)
		})

		Convey("Other hosts are not recognized", func() {
			So(Classify(mustParse("https://m.bilibili.com/video/BV1GJ411x7h7")).IsAbsent(), ShouldBeTrue)
			So(Classify(mustParse("https://example.com/video/BV1GJ411x7h7")).IsAbsent(), ShouldBeTrue)
		})

		Convey("Video tokens without the BV prefix are not recognized", func() {
			So(Classify(mustParse("https://www.bilibili.com/video/av170001")).IsAbsent(), ShouldBeTrue)
		})

		Convey("Nil is not recognized", func() {
			So(Classify(nil).IsAbsent(), ShouldBeTrue)
		})

		Convey("Valid agrees with Classify", func() {
			src := New(nil)
			So(src.Valid(mustParse("https://bilibili.com/video/BV1GJ411x7h7")), ShouldBeTrue)
			So(src.Valid(mustParse("https://bilibili.com/read/cv1")), ShouldBeFalse)
		})
	})
}

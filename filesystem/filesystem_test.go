package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Given the in-memory backend", t, func() {
		SetMemMapFs()
		defer SetOsFs()

		So(API().WriteFile("/sources/a.lua", []byte("return {}"), os.ModePerm), ShouldBeNil)

		Convey("Files written through API are read back", func() {
			data, err := API().ReadFile("/sources/a.lua")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "return {}")
		})

		Convey("Switching again starts empty", func() {
			SetMemMapFs()
			exists, err := API().Exists("/sources/a.lua")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})

	Convey("The real backend is the OS filesystem", t, func() {
		SetOsFs()
		So(API().Name(), ShouldEqual, "OsFs")
	})
}

package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/youngoor/youngoor/key"
)

func TestGet(t *testing.T) {
	Convey("Given the configured variant", t, func() {
		Convey("Plain renders readable text", func() {
			viper.Set(key.IconsVariant, Plain)
			So(Get(Lock), ShouldEqual, "[auth]")
			So(Get(Unlock), ShouldEqual, "[free]")
		})

		Convey("Emoji renders pictographs", func() {
			viper.Set(key.IconsVariant, Emoji)
			So(Get(Fail), ShouldEqual, "💀")
		})

		Convey("An unknown variant renders nothing", func() {
			viper.Set(key.IconsVariant, "wingdings")
			So(Get(Lua), ShouldBeEmpty)
		})
	})

	Convey("An unregistered icon renders nothing", t, func() {
		So(render(Icon(0), Plain), ShouldBeEmpty)
	})
}

func TestTable(t *testing.T) {
	Convey("Every icon has a glyph in every variant", t, func() {
		for i := range icons {
			for _, variant := range AvailableVariants() {
				So(render(i, variant), ShouldNotBeEmpty)
			}
		}
	})

	Convey("The variant list cannot be changed by callers", t, func() {
		listed := AvailableVariants()
		listed[0] = "changed"
		So(AvailableVariants()[0], ShouldEqual, Emoji)
	})
}

package catalog

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"turmites/internal/langton"
)

func TestLoad(t *testing.T) {
	Convey("Loading catalog files", t, func() {
		Convey("A valid file yields presets in order", func() {
			presets, err := Load(filepath.Join("testdata", "rules.yaml"))
			So(err, ShouldBeNil)
			So(presets, ShouldHaveLength, 3)
			So(presets[0], ShouldResemble, langton.Preset{Name: "Classic", Turns: "RL", Start: 0x000000, End: 0xFFFFFF})
			So(presets[1].Start, ShouldEqual, 0x112233)
			So(presets[1].End, ShouldEqual, 0xAABBCC)
			So(presets[2].Name, ShouldEqual, "")

			rules, err := langton.BuildRules(presets)
			So(err, ShouldBeNil)
			So(rules[2].Name(), ShouldEqual, "L")
		})

		Convey("An unknown turn character is rejected", func() {
			_, err := Load(filepath.Join("testdata", "bad_turns.yaml"))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "bad_turns.yaml")
		})

		Convey("An empty rule list is rejected", func() {
			_, err := Load(filepath.Join("testdata", "empty.yaml"))
			So(err, ShouldNotBeNil)
		})

		Convey("A missing file is reported", func() {
			_, err := Load(filepath.Join("testdata", "missing.yaml"))
			So(err, ShouldNotBeNil)
		})

		Convey("The shipped catalog matches the built-in presets", func() {
			presets, err := Load(filepath.Join("..", "..", "configs", "rules.yaml"))
			So(err, ShouldBeNil)
			So(presets, ShouldResemble, langton.DefaultPresets())
		})
	})
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("rules:\n  - turns: RL\n    start: '#000000'\n    end: '#ffffff'\n    speed: 3\n"))
	if err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]uint32{"#000000": 0, "#AaBbCc": 0xAABBCC, "0x2bb25a": 0x2BB25A, "0XFF00AA": 0xFF00AA}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Fatalf("ParseColor(%q) = %#x, %v", in, got, err)
		}
	}
	for _, in := range []string{"", "000000", "#12345", "#GGGGGG", "0x1234567"} {
		if _, err := ParseColor(in); err == nil {
			t.Fatalf("ParseColor(%q) accepted", in)
		}
	}
	if got := FormatColor(0x2BB25A); got != "#2BB25A" {
		t.Fatalf("FormatColor = %q", got)
	}
}

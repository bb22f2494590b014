package catalog_test

import (
	"errors"
	"testing"

	"github.com/okian/dyno/internal/domain/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given catalog construction", t, func() {
		Convey("When definitions are valid", func() {
			c, err := catalog.New([]catalog.Definition{
				{Key: "a", Category: catalog.CategoryIntake, HPGain: 5},
				{Key: "b", Category: catalog.CategoryExhaust, HPGain: 10},
			})
			So(err, ShouldBeNil)
			So(c.Size(), ShouldEqual, 2)
			So(c.Keys(), ShouldResemble, []string{"a", "b"})
		})

		Convey("When a key is duplicated", func() {
			_, err := catalog.New([]catalog.Definition{
				{Key: "a", Category: catalog.CategoryIntake},
				{Key: "a", Category: catalog.CategoryExhaust},
			})
			So(errors.Is(err, catalog.ErrDuplicateKey), ShouldBeTrue)
		})

		Convey("When a key is empty", func() {
			_, err := catalog.New([]catalog.Definition{{Category: catalog.CategoryIntake}})
			So(errors.Is(err, catalog.ErrEmptyKey), ShouldBeTrue)
		})

		Convey("When a tune has no stage", func() {
			_, err := catalog.New([]catalog.Definition{{Key: "t", Category: catalog.CategoryTune}})
			So(errors.Is(err, catalog.ErrInvalidDefinition), ShouldBeTrue)
		})

		Convey("When a confidence is out of range", func() {
			_, err := catalog.New([]catalog.Definition{{
				Key: "x", Category: catalog.CategoryIntake,
				Physics: catalog.PhysicsSpec{Confidence: 1.5},
			}})
			So(errors.Is(err, catalog.ErrInvalidDefinition), ShouldBeTrue)
		})
	})
}

func TestDefault(t *testing.T) {
	Convey("Given the built-in registry", t, func() {
		c := catalog.Default()

		Convey("Then it should contain the core mod set", func() {
			for _, key := range []string{
				"stage1-tune", "stage2-tune", "stage3-tune",
				"cold-air-intake", "catback-exhaust", "headers", "downpipe",
				"turbo-upgrade", "wheels-lightweight", "fuel-system-upgrade",
			} {
				_, ok := c.Lookup(key)
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Then tune stages should be strictly ascending", func() {
			s1, _ := c.Lookup("stage1-tune")
			s2, _ := c.Lookup("stage2-tune")
			s3, _ := c.Lookup("stage3-tune")
			So(s1.Stage, ShouldBeLessThan, s2.Stage)
			So(s2.Stage, ShouldBeLessThan, s3.Stage)
		})

		Convey("Then support hardware should carry no base hp gain", func() {
			for _, key := range []string{"fuel-system-upgrade", "charge-pipe", "high-pressure-fuel-pump"} {
				d, ok := c.Lookup(key)
				So(ok, ShouldBeTrue)
				So(d.HPGain, ShouldEqual, 0)
				So(d.Physics.Kind, ShouldEqual, catalog.PhysicsSupport)
			}
		})

		Convey("Then every entry should have a confidence in range", func() {
			for _, d := range c.Definitions() {
				So(d.Physics.Confidence, ShouldBeGreaterThan, 0)
				So(d.Physics.Confidence, ShouldBeLessThanOrEqualTo, 1)
			}
		})
	})
}

func TestParseCategory(t *testing.T) {
	Convey("Given category strings", t, func() {
		Convey("When parsing known names", func() {
			for _, name := range []string{
				"power", "intake", "exhaust", "tune", "forced-induction",
				"handling", "brakes", "wheels", "cooling", "aero", "drivetrain", "support",
			} {
				cat, err := catalog.ParseCategory(name)
				So(err, ShouldBeNil)
				So(cat.String(), ShouldEqual, name)
			}
		})

		Convey("When parsing an unknown name", func() {
			_, err := catalog.ParseCategory("nitrous")
			So(errors.Is(err, catalog.ErrUnknownCategory), ShouldBeTrue)
		})
	})
}

func TestCategoryRouting(t *testing.T) {
	Convey("Given the category routing predicates", t, func() {
		Convey("Then only exhaust, intake, and tune are capped", func() {
			So(catalog.CategoryExhaust.Capped(), ShouldBeTrue)
			So(catalog.CategoryIntake.Capped(), ShouldBeTrue)
			So(catalog.CategoryTune.Capped(), ShouldBeTrue)
			So(catalog.CategoryForcedInduction.Capped(), ShouldBeFalse)
			So(catalog.CategoryPower.Capped(), ShouldBeFalse)
			So(catalog.CategoryHandling.Capped(), ShouldBeFalse)
		})

		Convey("Then only power and forced-induction are multiplied", func() {
			So(catalog.CategoryPower.Multiplied(), ShouldBeTrue)
			So(catalog.CategoryForcedInduction.Multiplied(), ShouldBeTrue)
			So(catalog.CategoryTune.Multiplied(), ShouldBeFalse)
			So(catalog.CategoryExhaust.Multiplied(), ShouldBeFalse)
		})
	})
}

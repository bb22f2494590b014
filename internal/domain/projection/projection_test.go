package projection_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/dyno/internal/domain/catalog"
	"github.com/okian/dyno/internal/domain/projection"
	"github.com/okian/dyno/internal/domain/vehicle"
	. "github.com/smartystreets/goconvey/convey"
)

func request(engine string, hp, boost float64, mods ...string) projection.Request {
	return projection.Request{
		Vehicle: vehicle.Baseline{
			HP:          hp,
			Torque:      hp * 1.05,
			CurbWeight:  3200,
			ZeroToSixty: 5.2,
			Engine:      engine,
			BoostPSI:    boost,
		},
		Mods: mods,
	}
}

func TestNewService(t *testing.T) {
	Convey("Given service construction", t, func() {
		Convey("When the catalog is nil", func() {
			_, err := projection.NewLegacy(nil)
			So(errors.Is(err, projection.ErrNilCatalog), ShouldBeTrue)

			_, err = projection.NewPhysics(nil)
			So(errors.Is(err, projection.ErrNilCatalog), ShouldBeTrue)
		})

		Convey("When the catalog is valid", func() {
			legacy, err := projection.NewLegacy(catalog.Default())
			So(err, ShouldBeNil)
			So(legacy.Model(), ShouldEqual, projection.ModelLegacy)

			physics, err := projection.NewPhysics(catalog.Default())
			So(err, ShouldBeNil)
			So(physics.Model(), ShouldEqual, projection.ModelPhysics)
		})
	})
}

func TestLegacyProjection(t *testing.T) {
	Convey("Given the legacy model", t, func() {
		svc, err := projection.NewLegacy(catalog.Default())
		So(err, ShouldBeNil)

		Convey("When projecting a stage1 tune on a naturally-aspirated vehicle", func() {
			res, err := svc.Project(context.Background(), request("2.5L flat-six", 200, 0, "stage1-tune"))
			So(err, ShouldBeNil)

			Convey("Then the tune cap clamps the gain", func() {
				So(res.Model, ShouldEqual, projection.ModelLegacy)
				So(res.Archetype, ShouldEqual, "naturally-aspirated")
				So(res.TotalRawGain, ShouldEqual, 70)
				So(res.TotalGain, ShouldEqual, 40)
				So(res.Adjustment, ShouldEqual, 30)
				So(res.ProjectedHP, ShouldEqual, 240)
				So(res.CapClamps, ShouldEqual, 1)
			})

			Convey("Then every record carries the flat categorical confidence", func() {
				So(res.Confidence, ShouldEqual, projection.ConfidenceModerate)
				for _, rec := range res.Breakdown {
					So(rec.Confidence, ShouldEqual, 0.5)
				}
			})
		})

		Convey("When the request is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := svc.Project(ctx, request("2.0T", 250, 18, "stage1-tune"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPhysicsProjection(t *testing.T) {
	Convey("Given the physics model", t, func() {
		svc, err := projection.NewPhysics(catalog.Default())
		So(err, ShouldBeNil)

		Convey("When projecting a stage3 tune on a 291 hp / 21 psi turbo car", func() {
			res, err := svc.Project(context.Background(), request("2.0L turbo", 291, 21, "stage3-tune"))
			So(err, ShouldBeNil)

			Convey("Then the pressure-ratio gain and final boost are reported", func() {
				So(res.TotalGain, ShouldEqual, 57)
				So(res.ProjectedHP, ShouldEqual, 348)
				So(res.FinalBoostPSI, ShouldEqual, 31)
				So(res.Confidence, ShouldEqual, projection.ConfidenceModerate)
			})

			Convey("Then the breakdown exposes the running boost state", func() {
				So(res.Breakdown, ShouldHaveLength, 1)
				So(res.Breakdown[0].BoostPSI, ShouldEqual, 31)
				So(res.Breakdown[0].Reason, ShouldContainSubstring, "pressure ratio")
			})
		})

		Convey("When every mod has deterministic confidence", func() {
			res, err := svc.Project(context.Background(), request("2.0L turbo", 291, 21, "coilovers", "big-brake-kit"))
			So(err, ShouldBeNil)
			So(res.Confidence, ShouldEqual, projection.ConfidenceHigh)
		})

		Convey("When the baseline cannot support the model", func() {
			res, err := svc.Project(context.Background(), request("2.0L turbo", 0, 18, "stage1-tune"))
			So(err, ShouldBeNil)

			Convey("Then the result degrades with warnings instead of failing", func() {
				So(res.TotalGain, ShouldEqual, 0)
				So(res.Confidence, ShouldEqual, projection.ConfidenceLow)
				So(res.Warnings, ShouldNotBeEmpty)
			})
		})
	})
}

func TestUnknownKeysAreSkipped(t *testing.T) {
	Convey("Given a selection with unknown keys", t, func() {
		svc, err := projection.NewLegacy(catalog.Default())
		So(err, ShouldBeNil)

		res, err := svc.Project(context.Background(), request("2.0T", 250, 18, "stage1-tune", "nos-kit", "flux-capacitor"))
		So(err, ShouldBeNil)

		Convey("Then known mods still project and unknowns are reported", func() {
			So(res.SkippedKeys, ShouldResemble, []string{"nos-kit", "flux-capacitor"})
			So(res.Breakdown, ShouldHaveLength, 1)
			So(res.TotalGain, ShouldBeGreaterThan, 0)
		})
	})
}

func TestProjectionIdempotence(t *testing.T) {
	Convey("Given identical requests", t, func() {
		req := request("2.0L turbo", 291, 21, "stage2-tune", "downpipe", "cold-air-intake", "coilovers")

		for _, newService := range []func(*catalog.Catalog, ...projection.Option) (projection.Service, error){
			projection.NewLegacy, projection.NewPhysics,
		} {
			svc, err := newService(catalog.Default())
			So(err, ShouldBeNil)

			first, err := svc.Project(context.Background(), req)
			So(err, ShouldBeNil)
			second, err := svc.Project(context.Background(), req)
			So(err, ShouldBeNil)

			Convey("Then results are bit-identical for "+svc.Model(), func() {
				So(second, ShouldResemble, first)
			})
		}
	})
}

func TestWheelFitmentFeedsDerivedMetrics(t *testing.T) {
	Convey("Given a request with a wheel fitment", t, func() {
		svc, err := projection.NewPhysics(catalog.Default())
		So(err, ShouldBeNil)

		plain := request("2.0L turbo", 291, 21, "coilovers")
		fitted := plain
		fitted.WheelFitment = &projection.WheelFitment{GripBonus: 0.05, WeightChange: -12}

		base, err := svc.Project(context.Background(), plain)
		So(err, ShouldBeNil)
		withWheels, err := svc.Project(context.Background(), fitted)
		So(err, ShouldBeNil)

		Convey("Then grip and weight deltas move the derived estimate", func() {
			So(withWheels.Derived.LateralG, ShouldBeGreaterThan, base.Derived.LateralG)
			So(withWheels.Derived.PowerToWeight, ShouldBeGreaterThan, base.Derived.PowerToWeight)
		})
	})
}

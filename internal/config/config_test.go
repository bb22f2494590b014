package config_test

import (
	"testing"

	"github.com/okian/dyno/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
			convey.So(cfg.Model, convey.ShouldEqual, "legacy")
			convey.So(cfg.CatalogPath, convey.ShouldBeEmpty)
			convey.So(cfg.MaxModsPerRequest, convey.ShouldEqual, 32)
			convey.So(cfg.ZeroToSixtyFloorSec, convey.ShouldEqual, 2.8)
			convey.So(cfg.DampingFactor, convey.ShouldEqual, 0.35)
			convey.So(cfg.ResultCacheSize, convey.ShouldEqual, 10_000)
		})
	})
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with empty namespace and subsystem", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithNamespace(""), WithSubsystem(""), WithPrometheusRegistry(registry))

			Convey("Then the defaults are kept", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "dyno")
				So(manager.subsystem, ShouldEqual, "projection")
			})
		})

		Convey("When creating with nil histogram buckets", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithHistogramBuckets(nil), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording projection metrics", func() {
			Convey("Then it should record projections by model", func() {
				So(func() {
					RecordProjection("legacy", 1.5)
					RecordProjection("physics", 2.0)
					RecordProjection("legacy", 0.4)
				}, ShouldNotPanic)
			})

			Convey("And it should record comparison runs", func() {
				So(func() {
					RecordComparisonRun()
					RecordComparisonRun()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording adjustment metrics", func() {
			Convey("Then it should record unknown mod keys", func() {
				So(func() {
					RecordUnknownModKey()
					RecordUnknownModKey()
				}, ShouldNotPanic)
			})

			Convey("And it should record cap clamps and supersessions", func() {
				So(func() {
					RecordCapClamps(2)
					RecordCapClamps(0)
					RecordCapClamps(-1)
					RecordTuneSupersessions(1)
					RecordTuneSupersessions(0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording operational metrics", func() {
			Convey("Then it should update catalog size", func() {
				So(func() {
					UpdateCatalogSize(26)
					UpdateCatalogSize(0)
				}, ShouldNotPanic)
			})

			Convey("And it should record result cache hits", func() {
				So(func() {
					RecordResultCacheHit()
					RecordResultCacheHit()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record HTTP requests", func() {
				So(func() {
					RecordHTTPRequest("/healthz", "GET", "200")
					RecordHTTPRequest("/v1/projection", "POST", "200")
					RecordHTTPRequest("/v1/compare", "POST", "400")
				}, ShouldNotPanic)
			})

			Convey("And it should record HTTP request duration", func() {
				So(func() {
					RecordHTTPRequestDuration("/healthz", "GET", "200", 5.0)
					RecordHTTPRequestDuration("/v1/projection", "POST", "200", 10.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording with edge values", func() {
			So(func() {
				RecordProjection("", 0.0)
				RecordProjection("legacy", 30000.0)
				RecordHTTPRequest("", "", "200")
				RecordHTTPRequestDuration("", "", "200", 0.0)
			}, ShouldNotPanic)
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 10)

			for i := 0; i < 10; i++ {
				go func() {
					for j := 0; j < 100; j++ {
						RecordProjection("legacy", float64(j))
						RecordResultCacheHit()
						RecordHTTPRequest("/v1/projection", "POST", "200")
					}
					done <- true
				}()
			}

			for i := 0; i < 10; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(true, ShouldBeTrue) // If we get here, no panics occurred
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global registry accessor", t, func() {
		So(GetRegistry(), ShouldNotBeNil)
		So(GetRegistry(), ShouldEqual, customRegistry)
	})
}

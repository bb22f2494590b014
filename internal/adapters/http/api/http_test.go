package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/dyno/internal/adapters/http/api"
	service "github.com/okian/dyno/internal/app"
	"github.com/okian/dyno/internal/domain/compare"
	"github.com/okian/dyno/internal/domain/projection"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestMux(t *testing.T, opts ...service.Option) *http.ServeMux {
	t.Helper()
	svc := service.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc).Register(context.Background(), mux)
	return mux
}

func do(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"vehicle": {
		"hp": 291,
		"torque": 310,
		"curb_weight": 3450,
		"zero_to_sixty": 5.4,
		"engine": "2.0L turbo",
		"boost_psi": 21
	},
	"mods": ["stage2-tune", "downpipe", "coilovers"]
}`

func TestHealthEndpoint(t *testing.T) {
	Convey("Given the registered routes", t, func() {
		mux := newTestMux(t)

		Convey("When GET /healthz", func() {
			rec := do(mux, http.MethodGet, "/healthz", "")

			Convey("Then it reports status, model, and catalog size", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldStartWith, "application/json")

				var body map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
				So(body["status"], ShouldEqual, "ok")
				So(body["model"], ShouldEqual, projection.ModelLegacy)
				So(body["catalog_size"], ShouldBeGreaterThan, 0)
			})

			Convey("Then a request id is attached", func() {
				So(rec.Header().Get("X-Request-Id"), ShouldNotBeEmpty)
			})
		})

		Convey("When the caller supplies a request id", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set("X-Request-Id", "abc-123")
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			So(rec.Header().Get("X-Request-Id"), ShouldEqual, "abc-123")
		})
	})
}

func TestProjectionEndpoint(t *testing.T) {
	Convey("Given the projection endpoint", t, func() {
		mux := newTestMux(t)

		Convey("When posting a valid request", func() {
			rec := do(mux, http.MethodPost, "/v1/projection", validBody)

			Convey("Then it returns a complete result", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var res projection.Result
				So(json.Unmarshal(rec.Body.Bytes(), &res), ShouldBeNil)
				So(res.Model, ShouldEqual, projection.ModelLegacy)
				So(res.Archetype, ShouldEqual, "turbo")
				So(res.TotalGain, ShouldBeGreaterThan, 0)
				So(res.ProjectedHP, ShouldBeGreaterThan, 291)
				So(res.Breakdown, ShouldHaveLength, 3)
				So(res.Derived.PowerToWeight, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When posting malformed JSON", func() {
			rec := do(mux, http.MethodPost, "/v1/projection", `{"vehicle": `)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "bad_request")
		})

		Convey("When the engine descriptor is missing", func() {
			rec := do(mux, http.MethodPost, "/v1/projection", `{"vehicle": {"hp": 300}, "mods": ["stage1-tune"]}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "engine")
		})

		Convey("When the mod list is empty", func() {
			rec := do(mux, http.MethodPost, "/v1/projection", `{"vehicle": {"hp": 300, "engine": "2.0L turbo"}, "mods": []}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "mods")
		})

		Convey("When the method is not POST", func() {
			rec := do(mux, http.MethodGet, "/v1/projection", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the mod set exceeds the configured bound", func() {
			bounded := newTestMux(t, service.WithMaxMods(1))
			rec := do(bounded, http.MethodPost, "/v1/projection", validBody)
			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(rec.Body.String(), ShouldContainSubstring, "projection_failed")
		})
	})
}

func TestCompareEndpoint(t *testing.T) {
	Convey("Given the compare endpoint", t, func() {
		mux := newTestMux(t)

		Convey("When posting a valid request", func() {
			rec := do(mux, http.MethodPost, "/v1/compare", validBody)

			Convey("Then both model results come back with a delta", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var rep compare.Report
				So(json.Unmarshal(rec.Body.Bytes(), &rep), ShouldBeNil)
				So(rep.Legacy.Model, ShouldEqual, projection.ModelLegacy)
				So(rep.Physics.Model, ShouldEqual, projection.ModelPhysics)
				So(rep.HPDelta, ShouldEqual, rep.Physics.ProjectedHP-rep.Legacy.ProjectedHP)
				So(rep.ConfidenceLabel, ShouldBeIn, "high", "moderate", "low")
			})
		})

		Convey("When posting malformed JSON", func() {
			rec := do(mux, http.MethodPost, "/v1/compare", `not json`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the method is not POST", func() {
			rec := do(mux, http.MethodGet, "/v1/compare", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestCatalogEndpoint(t *testing.T) {
	Convey("Given the catalog endpoint", t, func() {
		mux := newTestMux(t)

		Convey("When GET /v1/catalog", func() {
			rec := do(mux, http.MethodGet, "/v1/catalog", "")

			Convey("Then it lists the registry and the active model", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var body struct {
					Model         string `json:"model"`
					Modifications []struct {
						Key      string  `json:"key"`
						Category string  `json:"category"`
						HPGain   float64 `json:"hp_gain"`
					} `json:"modifications"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
				So(body.Model, ShouldEqual, projection.ModelLegacy)
				So(body.Modifications, ShouldNotBeEmpty)

				keys := make([]string, 0, len(body.Modifications))
				for _, m := range body.Modifications {
					So(m.Key, ShouldNotBeEmpty)
					So(m.Category, ShouldNotBeEmpty)
					keys = append(keys, m.Key)
				}
				So(strings.Join(keys, ","), ShouldContainSubstring, "stage1-tune")
			})
		})

		Convey("When the method is not GET", func() {
			rec := do(mux, http.MethodPost, "/v1/catalog", "{}")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

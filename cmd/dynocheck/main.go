// Command dynocheck runs the legacy and physics projection models side by
// side over a YAML scenario file and reports their divergence. It is an
// offline validation tool; the service itself never runs both models on
// the production path.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/dyno/internal/domain/catalog"
	"github.com/okian/dyno/internal/domain/compare"
	"github.com/okian/dyno/internal/domain/projection"
	"github.com/okian/dyno/internal/domain/vehicle"
)

// scenario is one validation case from the input file. Local structs
// carry the koanf tags so domain types stay wire-format agnostic.
type scenario struct {
	Name    string `koanf:"name"`
	Vehicle struct {
		HP          float64 `koanf:"hp"`
		Torque      float64 `koanf:"torque"`
		CurbWeight  float64 `koanf:"curb_weight"`
		ZeroToSixty float64 `koanf:"zero_to_sixty"`
		Engine      string  `koanf:"engine"`
		Drivetrain  string  `koanf:"drivetrain"`
		BoostPSI    float64 `koanf:"boost_psi"`
	} `koanf:"vehicle"`
	Mods         []string `koanf:"mods"`
	WheelFitment *struct {
		GripBonus    float64 `koanf:"grip_bonus"`
		WeightChange float64 `koanf:"weight_change"`
	} `koanf:"wheel_fitment"`
}

func (sc scenario) request() projection.Request {
	req := projection.Request{
		Vehicle: vehicle.Baseline{
			HP:          sc.Vehicle.HP,
			Torque:      sc.Vehicle.Torque,
			CurbWeight:  sc.Vehicle.CurbWeight,
			ZeroToSixty: sc.Vehicle.ZeroToSixty,
			Engine:      sc.Vehicle.Engine,
			Drivetrain:  sc.Vehicle.Drivetrain,
			BoostPSI:    sc.Vehicle.BoostPSI,
		},
		Mods: sc.Mods,
	}
	if sc.WheelFitment != nil {
		req.WheelFitment = &projection.WheelFitment{
			GripBonus:    sc.WheelFitment.GripBonus,
			WeightChange: sc.WheelFitment.WeightChange,
		}
	}
	return req
}

type scenarioFile struct {
	Scenarios []scenario `koanf:"scenarios"`
}

func main() {
	var (
		scenarioPath = flag.String("scenarios", "scenarios.yaml", "path to the YAML scenario file")
		catalogPath  = flag.String("catalog", "", "optional YAML catalog replacing the built-in registry")
		threshold    = flag.Float64("threshold", 25, "flag scenarios whose |hp delta| exceeds this value")
	)
	flag.Parse()

	if err := run(*scenarioPath, *catalogPath, *threshold); err != nil {
		fmt.Fprintln(os.Stderr, "dynocheck:", err)
		os.Exit(1)
	}
}

func run(scenarioPath, catalogPath string, threshold float64) error {
	cat := catalog.Default()
	if catalogPath != "" {
		var err error
		if cat, err = catalog.LoadFile(catalogPath); err != nil {
			return err
		}
	}

	scenarios, err := loadScenarios(scenarioPath)
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		return fmt.Errorf("no scenarios in %s", scenarioPath)
	}

	runner, err := compare.NewRunner(cat)
	if err != nil {
		return err
	}

	ctx := context.Background()
	flagged := 0

	fmt.Printf("%-28s %10s %10s %10s %10s\n", "SCENARIO", "LEGACY HP", "PHYSICS HP", "DELTA", "CONFIDENCE")
	for _, sc := range scenarios {
		report, err := runner.Run(ctx, sc.request())
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}

		marker := ""
		if math.Abs(report.HPDelta) > threshold {
			marker = "  <- exceeds threshold"
			flagged++
		}
		fmt.Printf("%-28s %10.0f %10.0f %+10.0f %10s%s\n",
			sc.Name,
			report.Legacy.ProjectedHP,
			report.Physics.ProjectedHP,
			report.HPDelta,
			report.ConfidenceLabel,
			marker,
		)
	}

	fmt.Printf("\n%d scenario(s), %d flagged over %.0f hp divergence\n", len(scenarios), flagged, threshold)
	if flagged > 0 {
		return fmt.Errorf("%d scenario(s) exceeded the divergence threshold", flagged)
	}
	return nil
}

func loadScenarios(path string) ([]scenario, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	var sf scenarioFile
	if err := k.UnmarshalWithConf("", &sf, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	return sf.Scenarios, nil
}

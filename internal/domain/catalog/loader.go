package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// fileEntry mirrors one YAML catalog record. Category and physics kind are
// strings in the file and parsed into enums exactly once, here.
type fileEntry struct {
	Key             string  `koanf:"key"`
	Name            string  `koanf:"name"`
	Category        string  `koanf:"category"`
	Stage           int     `koanf:"stage"`
	HPGain          float64 `koanf:"hp_gain"`
	TorqueGain      float64 `koanf:"torque_gain"`
	ZeroToSixtyGain float64 `koanf:"zero_to_sixty_gain"`
	BrakingGain     float64 `koanf:"braking_gain"`
	LateralGGain    float64 `koanf:"lateral_g_gain"`
	WeightChange    float64 `koanf:"weight_change"`
	Physics         struct {
		Kind       string  `koanf:"kind"`
		Percent    float64 `koanf:"percent"`
		BoostPSI   float64 `koanf:"boost_psi"`
		Confidence float64 `koanf:"confidence"`
	} `koanf:"physics"`
}

type catalogFile struct {
	Modifications []fileEntry `koanf:"modifications"`
}

// LoadFile reads a YAML catalog from path. The file replaces the built-in
// registry wholesale; merging partial overrides is deliberately not
// supported so a deployment's catalog is always self-describing.
func LoadFile(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCatalog, err)
	}

	var cf catalogFile
	if err := k.UnmarshalWithConf("", &cf, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCatalog, err)
	}
	if len(cf.Modifications) == 0 {
		return nil, fmt.Errorf("%w: no modifications in %s", ErrLoadCatalog, path)
	}

	defs := make([]Definition, 0, len(cf.Modifications))
	for _, e := range cf.Modifications {
		cat, err := ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q: %w", ErrLoadCatalog, e.Key, err)
		}
		// Entries without a physics block are plain non-power mods.
		kind := PhysicsNone
		if e.Physics.Kind != "" {
			if kind, err = ParsePhysicsKind(e.Physics.Kind); err != nil {
				return nil, fmt.Errorf("%w: entry %q: %w", ErrLoadCatalog, e.Key, err)
			}
		}
		defs = append(defs, Definition{
			Key:             e.Key,
			Name:            e.Name,
			Category:        cat,
			Stage:           e.Stage,
			HPGain:          e.HPGain,
			TorqueGain:      e.TorqueGain,
			ZeroToSixtyGain: e.ZeroToSixtyGain,
			BrakingGain:     e.BrakingGain,
			LateralGGain:    e.LateralGGain,
			WeightChange:    e.WeightChange,
			Physics: PhysicsSpec{
				Kind:       kind,
				Percent:    e.Physics.Percent,
				BoostPSI:   e.Physics.BoostPSI,
				Confidence: e.Physics.Confidence,
			},
		})
	}
	return New(defs)
}

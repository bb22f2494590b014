// Package vehicle defines the immutable vehicle baseline and the platform
// resolver that classifies an engine descriptor into an aspiration
// archetype with its cap table and gain multiplier.
package vehicle

// Baseline carries the stock specs a projection starts from. It is
// reference data: loaded once per projection and never mutated.
type Baseline struct {
	HP          float64 `json:"hp"`
	Torque      float64 `json:"torque"`
	CurbWeight  float64 `json:"curb_weight"`
	ZeroToSixty float64 `json:"zero_to_sixty"`
	Engine      string  `json:"engine"`
	Drivetrain  string  `json:"drivetrain"`

	// BoostPSI is the stock manifold boost pressure. Zero on
	// naturally-aspirated platforms; the physics model degrades
	// boost-dependent gains when it is missing.
	BoostPSI float64 `json:"boost_psi"`
}

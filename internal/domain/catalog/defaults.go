package catalog

// Physics confidence defaults per rule kind. Boost gains share the 0.7
// efficiency factor's calibration basis; efficiency percentages are the
// best-measured rules in the set.
const (
	confEfficiency = 0.85
	confFlow       = 0.75
	confBoost      = 0.70
	confSupport    = 0.90
)

// Default returns the built-in modification registry. Base gains are
// generic values; the platform multiplier is applied downstream.
func Default() *Catalog {
	c, err := New(defaultDefinitions())
	if err != nil {
		// The built-in registry is validated by tests; a failure here is
		// a programming error.
		panic(err)
	}
	return c
}

func defaultDefinitions() []Definition {
	return []Definition{
		// ECU calibrations. Higher stages supersede lower ones and may
		// partially include discrete hardware (see resolve.StageIncludes).
		{
			Key: "stage1-tune", Name: "Stage 1 ECU Tune", Category: CategoryTune, Stage: 1,
			HPGain: 70, TorqueGain: 85,
			Physics: PhysicsSpec{Kind: PhysicsBoost, BoostPSI: 4, Confidence: confBoost},
		},
		{
			Key: "stage2-tune", Name: "Stage 2 ECU Tune", Category: CategoryTune, Stage: 2,
			HPGain: 95, TorqueGain: 110,
			Physics: PhysicsSpec{Kind: PhysicsBoost, BoostPSI: 7, Confidence: confBoost},
		},
		{
			Key: "stage3-tune", Name: "Stage 3 ECU Tune", Category: CategoryTune, Stage: 3,
			HPGain: 130, TorqueGain: 150,
			Physics: PhysicsSpec{Kind: PhysicsBoost, BoostPSI: 10, Confidence: confBoost},
		},

		// Fueling.
		{
			Key: "e85-flex-fuel", Name: "E85 Flex Fuel Kit", Category: CategoryPower,
			HPGain: 25, TorqueGain: 30,
			Physics: PhysicsSpec{Kind: PhysicsBoost, BoostPSI: 3, Confidence: confBoost},
		},

		// Airflow hardware.
		{
			Key: "cold-air-intake", Name: "Cold Air Intake", Category: CategoryIntake,
			HPGain: 8, TorqueGain: 6,
			Physics: PhysicsSpec{Kind: PhysicsEfficiency, Percent: 0.010, Confidence: confEfficiency},
		},
		{
			Key: "catback-exhaust", Name: "Cat-Back Exhaust", Category: CategoryExhaust,
			HPGain: 10, TorqueGain: 8,
			Physics: PhysicsSpec{Kind: PhysicsEfficiency, Percent: 0.012, Confidence: confEfficiency},
		},
		{
			Key: "headers", Name: "Long-Tube Headers", Category: CategoryExhaust,
			HPGain: 14, TorqueGain: 12,
			Physics: PhysicsSpec{Kind: PhysicsEfficiency, Percent: 0.015, Confidence: confEfficiency},
		},
		{
			Key: "downpipe", Name: "High-Flow Downpipe", Category: CategoryExhaust,
			HPGain: 20, TorqueGain: 25,
			Physics: PhysicsSpec{Kind: PhysicsBoost, BoostPSI: 2, Confidence: confBoost},
		},

		// Forced induction.
		{
			Key: "turbo-upgrade", Name: "Upgraded Turbocharger", Category: CategoryForcedInduction,
			HPGain: 60, TorqueGain: 70,
			Physics: PhysicsSpec{Kind: PhysicsFlow, Percent: 0.15, BoostPSI: 4, Confidence: confFlow},
		},
		{
			Key: "supercharger-pulley", Name: "Smaller Supercharger Pulley", Category: CategoryForcedInduction,
			HPGain: 35, TorqueGain: 40,
			Physics: PhysicsSpec{Kind: PhysicsBoost, BoostPSI: 2.5, Confidence: confBoost},
		},

		// Support hardware: enables output, never contributes hp.
		{
			Key: "fuel-system-upgrade", Name: "Fuel System Upgrade", Category: CategorySupport,
			Physics: PhysicsSpec{Kind: PhysicsSupport, Confidence: confSupport},
		},
		{
			Key: "charge-pipe", Name: "Reinforced Charge Pipe", Category: CategorySupport,
			Physics: PhysicsSpec{Kind: PhysicsSupport, Confidence: confSupport},
		},
		{
			Key: "high-pressure-fuel-pump", Name: "High-Pressure Fuel Pump", Category: CategorySupport,
			Physics: PhysicsSpec{Kind: PhysicsSupport, Confidence: confSupport},
		},

		// Cooling.
		{
			Key: "intercooler", Name: "Front-Mount Intercooler", Category: CategoryCooling,
			Physics: PhysicsSpec{Kind: PhysicsSupport, Confidence: confSupport},
		},
		{
			Key: "oil-cooler", Name: "Oil Cooler", Category: CategoryCooling,
			Physics: PhysicsSpec{Kind: PhysicsSupport, Confidence: confSupport},
		},
		{
			Key: "radiator-upgrade", Name: "Performance Radiator", Category: CategoryCooling,
			Physics: PhysicsSpec{Kind: PhysicsSupport, Confidence: confSupport},
		},

		// Handling.
		{
			Key: "lowering-springs", Name: "Lowering Springs", Category: CategoryHandling,
			LateralGGain: 0.03,
			Physics:      PhysicsSpec{Kind: PhysicsNone, Confidence: 1},
		},
		{
			Key: "coilovers", Name: "Coilover Suspension", Category: CategoryHandling,
			LateralGGain: 0.06, WeightChange: -4,
			Physics: PhysicsSpec{Kind: PhysicsNone, Confidence: 1},
		},
		{
			Key: "sway-bars", Name: "Adjustable Sway Bars", Category: CategoryHandling,
			LateralGGain: 0.04,
			Physics:      PhysicsSpec{Kind: PhysicsNone, Confidence: 1},
		},

		// Brakes.
		{
			Key: "big-brake-kit", Name: "Big Brake Kit", Category: CategoryBrakes,
			BrakingGain: 12, WeightChange: 6,
			Physics: PhysicsSpec{Kind: PhysicsNone, Confidence: 1},
		},
		{
			Key: "performance-pads", Name: "Performance Brake Pads", Category: CategoryBrakes,
			BrakingGain: 6,
			Physics:     PhysicsSpec{Kind: PhysicsNone, Confidence: 1},
		},

		// Wheels and tires.
		{
			Key: "wheels-lightweight", Name: "Lightweight Forged Wheels", Category: CategoryWheels,
			LateralGGain: 0.02, WeightChange: -16,
			Physics: PhysicsSpec{Kind: PhysicsNone, Confidence: 1},
		},
		{
			Key: "performance-tires", Name: "Performance Summer Tires", Category: CategoryWheels,
			LateralGGain: 0.08, BrakingGain: 8,
			Physics: PhysicsSpec{Kind: PhysicsNone, Confidence: 1},
		},

		// Aero.
		{
			Key: "front-splitter", Name: "Front Splitter", Category: CategoryAero,
			LateralGGain: 0.01, WeightChange: 5,
			Physics: PhysicsSpec{Kind: PhysicsNone, Confidence: 1},
		},
		{
			Key: "rear-wing", Name: "Rear Wing", Category: CategoryAero,
			LateralGGain: 0.02, WeightChange: 8,
			Physics: PhysicsSpec{Kind: PhysicsNone, Confidence: 1},
		},

		// Drivetrain.
		{
			Key: "limited-slip-differential", Name: "Limited-Slip Differential", Category: CategoryDrivetrain,
			ZeroToSixtyGain: 0.10, WeightChange: 4,
			Physics: PhysicsSpec{Kind: PhysicsNone, Confidence: 1},
		},
		{
			Key: "lightweight-flywheel", Name: "Lightweight Flywheel", Category: CategoryDrivetrain,
			ZeroToSixtyGain: 0.05, WeightChange: -9,
			Physics: PhysicsSpec{Kind: PhysicsNone, Confidence: 1},
		},
	}
}

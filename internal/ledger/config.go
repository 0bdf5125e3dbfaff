package ledger

import "github.com/osse101/WhineTime/internal/domain"

// Config holds starting stock, shop prices and utility rules
type Config struct {
	Initial map[domain.Resource]float64 `yaml:"initial"`
	Prices  map[domain.Resource]float64 `yaml:"prices"`

	ElectricityCapacity float64 `yaml:"electricity_capacity"`
	WaterCapacity       float64 `yaml:"water_capacity"`
	ElectricityPrice    float64 `yaml:"electricity_price"`
	WaterPrice          float64 `yaml:"water_price"`

	WashWaterPerBottle            float64 `yaml:"wash_water_per_bottle"`
	WashElectricityPerBottle      float64 `yaml:"wash_electricity_per_bottle"`
	SterilizeElectricityPerBottle float64 `yaml:"sterilize_electricity_per_bottle"`
	PumpElectricity               float64 `yaml:"pump_electricity"`
	PumpVolume                    float64 `yaml:"pump_volume"`
	BreastMilkFeedVolume          float64 `yaml:"breast_milk_feed_volume"`

	Critical CriticalThresholds `yaml:"critical"`
}

// CriticalThresholds are the stock levels below which a resource is flagged
type CriticalThresholds struct {
	Diapers          float64 `yaml:"diapers"`
	Formula          float64 `yaml:"formula"`
	SensitiveFormula float64 `yaml:"sensitive_formula"`
	Food             float64 `yaml:"food"`
	CleanBottles     float64 `yaml:"clean_bottles"`
	Money            float64 `yaml:"money"`
}

// DefaultConfig returns the standard household
func DefaultConfig() Config {
	return Config{
		Initial: map[domain.Resource]float64{
			domain.ResourceMoney:            500,
			domain.ResourceDiapers:          20,
			domain.ResourceFormula:          10,
			domain.ResourceSensitiveFormula: 5,
			domain.ResourceBottles:          8,
			domain.ResourceFood:             15,
			domain.ResourceBreastMilk:       0,
			domain.ResourceCleanBottles:     6,
			domain.ResourceDirtyBottles:     2,
			domain.ResourceElectricity:      1000,
			domain.ResourceWater:            500,
		},
		Prices: map[domain.Resource]float64{
			domain.ResourceDiapers:          15,
			domain.ResourceFormula:          25,
			domain.ResourceSensitiveFormula: 45,
			domain.ResourceBottles:          8,
			domain.ResourceFood:             12,
		},
		ElectricityCapacity:           1000,
		WaterCapacity:                 500,
		ElectricityPrice:              0.12,
		WaterPrice:                    0.003,
		WashWaterPerBottle:            2,
		WashElectricityPerBottle:      1,
		SterilizeElectricityPerBottle: 2,
		PumpElectricity:               5,
		PumpVolume:                    120,
		BreastMilkFeedVolume:          60,
		Critical: CriticalThresholds{
			Diapers:          3,
			Formula:          2,
			SensitiveFormula: 1,
			Food:             2,
			CleanBottles:     2,
			Money:            50,
		},
	}
}

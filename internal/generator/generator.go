// Package generator synthesizes the per-city pollution dataset served by the
// API. Figures are derived from fixed severity tiers and linear formulas
// calibrated against published CPCB, ICAR and CSE parameter ranges, so two
// runs always produce identical output.
package generator

import (
	"github.com/Disha-01-alt/PollutionBackend/internal/domain"
	"github.com/Disha-01-alt/PollutionBackend/pkg/utils"
)

const dataYear = 2023

// tier is a named severity bucket with the numeric factor fed into the
// metric formulas.
type tier struct {
	factor float64
	status string
}

// waterTier returns the water severity tier for a city
func waterTier(city string) tier {
	switch city {
	case "Delhi", "Kolkata":
		return tier{0.9, "Very Poor"}
	case "Mumbai", "Chennai", "Ahmedabad", "Lucknow":
		return tier{0.8, "Poor"}
	default:
		return tier{0.65, "Moderate"}
	}
}

// soilTier returns the soil contamination tier for a city
func soilTier(city string) tier {
	switch city {
	case "Delhi":
		return tier{0.95, "Very High"}
	case "Mumbai", "Kolkata", "Ahmedabad", "Lucknow":
		return tier{0.8, "High"}
	case "Chennai", "Hyderabad", "Jaipur":
		return tier{0.75, "High"}
	default:
		return tier{0.65, "Moderate"}
	}
}

// plasticTier returns the plastic pollution tier for a city
func plasticTier(city string) tier {
	switch city {
	case "Delhi":
		return tier{0.95, "Severe"}
	case "Mumbai", "Kolkata":
		return tier{0.85, "Very High"}
	case "Chennai", "Ahmedabad", "Lucknow", "Pune", "Jaipur", "Hyderabad", "Bangalore":
		return tier{0.75, "High"}
	default:
		return tier{0.65, "Moderate"}
	}
}

// populationFactor scales plastic waste generation for the largest cities
func populationFactor(city string) float64 {
	switch city {
	case "Mumbai", "Delhi":
		return 1.3
	case "Bangalore", "Hyderabad", "Chennai", "Kolkata":
		return 1.1
	default:
		return 1.0
	}
}

// WaterRecords builds one water quality record per city, in city-list order.
// Parameter ranges follow CPCB National Water Monitoring Programme standards.
func WaterRecords() []domain.PollutionRecord {
	records := make([]domain.PollutionRecord, 0, len(domain.Cities))

	for _, city := range domain.Cities {
		t := waterTier(city)
		f := t.factor

		aqi := utils.RoundTo(45 + f*50, 1)

		records = append(records, domain.PollutionRecord{
			City:   city,
			Type:   domain.TypeWater,
			AQI:    &aqi,
			Status: t.status,
			Year:   dataYear,
			Metrics: map[string]float64{
				"bod":              utils.RoundTo(15 + f*25, 1),   // mg/L
				"cod":              utils.RoundTo(80 + f*80, 1),   // mg/L
				"dissolved_oxygen": utils.RoundTo(3 + (1-f)*3, 1), // mg/L
				"ph":               utils.RoundTo(6.8 + f*1.2, 1),
				"total_coliform":   float64(int(6000 + f*4000)), // MPN/100ml
			},
		})
	}

	return records
}

// SoilRecords builds one soil health record per city, in city-list order.
// Parameter ranges follow ICAR soil health monitoring standards.
func SoilRecords() []domain.PollutionRecord {
	records := make([]domain.PollutionRecord, 0, len(domain.Cities))

	for _, city := range domain.Cities {
		t := soilTier(city)
		f := t.factor

		contamination := utils.RoundTo(50 + f*40, 1)

		records = append(records, domain.PollutionRecord{
			City:               city,
			Type:               domain.TypeSoil,
			ContaminationLevel: &contamination,
			Status:             t.status,
			Year:               dataYear,
			Metrics: map[string]float64{
				"ph":           utils.RoundTo(6.8 + f*1.2, 1),
				"nitrogen":     utils.RoundTo(250 + f*120, 1), // mg/kg
				"phosphorus":   utils.RoundTo(30 + f*15, 1),   // mg/kg
				"potassium":    utils.RoundTo(240 + f*60, 1),  // mg/kg
				"heavy_metals": utils.RoundTo(60 + f*70, 1),   // mg/kg
			},
		})
	}

	return records
}

// PlasticRecords builds one plastic waste record per city, in city-list order.
// Waste generation scales with a population factor for the largest cities.
func PlasticRecords() []domain.PollutionRecord {
	records := make([]domain.PollutionRecord, 0, len(domain.Cities))

	for _, city := range domain.Cities {
		t := plasticTier(city)
		f := t.factor
		pop := populationFactor(city)

		index := utils.RoundTo(60 + f*30, 1)

		records = append(records, domain.PollutionRecord{
			City:           city,
			Type:           domain.TypePlastic,
			PollutionIndex: &index,
			Status:         t.status,
			Year:           dataYear,
			Metrics: map[string]float64{
				"waste_generation": utils.RoundTo((400 + f*400) * pop, 1), // tons/day
				"recycling_rate":   utils.RoundTo(25 + (1-f)*25, 1),     // percent
				"mismanaged":       utils.RoundTo(45 + f*25, 1),         // percent
				"microplastics":    utils.RoundTo(10 + f*15, 1),         // particles/m3
				"single_use":       utils.RoundTo(60 + f*20, 1),         // percent
			},
		})
	}

	return records
}

// BuildDataset assembles the full dataset: all water records, then soil,
// then plastic, wrapped with the fixed city and type lists.
func BuildDataset() domain.Dataset {
	data := make([]domain.PollutionRecord, 0, 3*len(domain.Cities))
	data = append(data, WaterRecords()...)
	data = append(data, SoilRecords()...)
	data = append(data, PlasticRecords()...)

	return domain.Dataset{
		Cities:         domain.Cities,
		PollutionTypes: domain.PollutionTypes,
		Data:           data,
	}
}

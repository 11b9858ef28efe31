package ship

// FuelPerUnit is the fuel consumed per unit of travel distance
const FuelPerUnit = 0.1

// TravelPlan is the cost/time calculation for one trip
type TravelPlan struct {
	Distance   float64 `json:"distance"`
	FuelCost   float64 `json:"fuelCost"`
	TravelTime float64 `json:"travelTime"`
}

// PlanTravel computes the distance-proportional fuel cost and the travel time
// at the given ship speed
func PlanTravel(distance, shipSpeed float64) TravelPlan {
	travelTime := 0.0
	if shipSpeed > 0 {
		travelTime = distance / shipSpeed
	}
	return TravelPlan{
		Distance:   distance,
		FuelCost:   distance * FuelPerUnit,
		TravelTime: travelTime,
	}
}

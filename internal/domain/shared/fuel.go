package shared

import "fmt"

// Fuel is the tank value object: current load against capacity. Mutating
// operations return a new value, clamped to [0, capacity].
type Fuel struct {
	Current  float64 `json:"current"`
	Capacity float64 `json:"capacity"`
}

// NewFuel creates a fuel value with validation
func NewFuel(current, capacity float64) (Fuel, error) {
	if current < 0 {
		return Fuel{}, fmt.Errorf("current fuel cannot be negative")
	}
	if capacity < 0 {
		return Fuel{}, fmt.Errorf("fuel capacity cannot be negative")
	}
	if current > capacity {
		return Fuel{}, fmt.Errorf("current fuel cannot exceed capacity")
	}
	return Fuel{Current: current, Capacity: capacity}, nil
}

// FullTank creates a fuel value filled to capacity
func FullTank(capacity float64) Fuel {
	return Fuel{Current: capacity, Capacity: capacity}
}

// Percentage returns fuel as percentage of capacity
func (f Fuel) Percentage() float64 {
	if f.Capacity == 0 {
		return 0.0
	}
	return f.Current / f.Capacity * 100.0
}

// Consume returns the tank with amount burned, floored at empty
func (f Fuel) Consume(amount float64) Fuel {
	newCurrent := f.Current - amount
	if newCurrent < 0 {
		newCurrent = 0
	}
	return Fuel{Current: newCurrent, Capacity: f.Capacity}
}

// Add returns the tank with amount added, capped at capacity
func (f Fuel) Add(amount float64) Fuel {
	newCurrent := f.Current + amount
	if newCurrent > f.Capacity {
		newCurrent = f.Capacity
	}
	return Fuel{Current: newCurrent, Capacity: f.Capacity}
}

// CanTravel checks if there is sufficient fuel for a trip
func (f Fuel) CanTravel(required float64) bool {
	return f.Current >= required
}

// IsFull checks if fuel is at capacity
func (f Fuel) IsFull() bool {
	return f.Current == f.Capacity
}

func (f Fuel) String() string {
	return fmt.Sprintf("Fuel(%.1f/%.1f)", f.Current, f.Capacity)
}

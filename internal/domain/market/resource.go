package market

import "fmt"

// ResourceType identifies a tradeable commodity. The set is closed: markets
// always carry exactly one entry per type.
type ResourceType string

const (
	Metals      ResourceType = "metals"
	Water       ResourceType = "water"
	Food        ResourceType = "food"
	Technology  ResourceType = "technology"
	LuxuryGoods ResourceType = "luxuryGoods"
	Contraband  ResourceType = "contraband"
)

// basePrices are the fixed catalog prices trades execute at. The drifting
// unit price derives from these via supply/demand.
var basePrices = map[ResourceType]int{
	Metals:      100,
	Water:       50,
	Food:        75,
	Technology:  250,
	LuxuryGoods: 500,
	Contraband:  800,
}

// AllResourceTypes returns the closed resource enumeration in catalog order
func AllResourceTypes() []ResourceType {
	return []ResourceType{Metals, Water, Food, Technology, LuxuryGoods, Contraband}
}

// LegalResourceTypes returns the resource types that are not contraband
func LegalResourceTypes() []ResourceType {
	return []ResourceType{Metals, Water, Food, Technology, LuxuryGoods}
}

// ParseResourceType maps a user-supplied name onto the closed enumeration
func ParseResourceType(name string) (ResourceType, error) {
	t := ResourceType(name)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidResourceType, name)
	}
	return t, nil
}

// IsValid checks membership in the closed enumeration
func (t ResourceType) IsValid() bool {
	_, ok := basePrices[t]
	return ok
}

// IsIllegal reports whether carrying this resource attracts police attention
func (t ResourceType) IsIllegal() bool {
	return t == Contraband
}

// BasePrice returns the catalog price for a resource type (0 for unknown types)
func BasePrice(t ResourceType) int {
	return basePrices[t]
}

// Resource holds the per-market supply/demand state of one commodity
type Resource struct {
	Type      ResourceType `json:"type"`
	BasePrice int          `json:"basePrice"`
	Supply    int          `json:"supply"`
	Demand    int          `json:"demand"`
	IsIllegal bool         `json:"isIllegal"`
}

package encounter

// Enemy is an immutable catalog entry; encounters select enemies, never
// mutate them
type Enemy struct {
	Name    string    `json:"name"`
	Type    EventType `json:"type"`
	Power   float64   `json:"power"`
	Shields float64   `json:"shields"`
	Speed   float64   `json:"speed"`
	Credits int       `json:"credits"`
}

// enemyCatalog is the fixed roster per event type
var enemyCatalog = map[EventType][]Enemy{
	Pirates: {
		{Name: "Space Pirate Scout", Type: Pirates, Power: 50, Shields: 30, Speed: 80, Credits: 500},
		{Name: "Pirate Raider", Type: Pirates, Power: 80, Shields: 60, Speed: 70, Credits: 1000},
		{Name: "Pirate Warlord", Type: Pirates, Power: 120, Shields: 100, Speed: 60, Credits: 2000},
	},
	Police: {
		{Name: "Police Patrol", Type: Police, Power: 60, Shields: 50, Speed: 90, Credits: 0},
		{Name: "Police Interceptor", Type: Police, Power: 90, Shields: 80, Speed: 100, Credits: 0},
		{Name: "Police Battlecruiser", Type: Police, Power: 150, Shields: 120, Speed: 70, Credits: 0},
	},
	Traders: {
		{Name: "Merchant Vessel", Type: Traders, Power: 30, Shields: 40, Speed: 50, Credits: 800},
		{Name: "Trade Convoy", Type: Traders, Power: 70, Shields: 90, Speed: 40, Credits: 2000},
		{Name: "Merchant Fleet", Type: Traders, Power: 100, Shields: 150, Speed: 30, Credits: 5000},
	},
}

// defaultEnemy is the fallback for an empty catalog entry; the
// fixed catalog makes this unreachable in normal operation
func defaultEnemy(t EventType) Enemy {
	return Enemy{
		Name:    "Unknown Enemy",
		Type:    t,
		Power:   50,
		Shields: 50,
		Speed:   50,
		Credits: 500,
	}
}

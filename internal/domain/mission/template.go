package mission

// template holds the per-type tuning constants for mission generation
type template struct {
	description    string
	baseReward     float64
	riskMultiplier float64
	timeMultiplier float64
}

var templates = map[Type]template{
	Delivery: {
		description:    "Transport valuable cargo to a specified location.",
		baseReward:     1000,
		riskMultiplier: 1.2,
		timeMultiplier: 0.8,
	},
	Smuggling: {
		description:    "Discreetly move sensitive cargo avoiding authorities.",
		baseReward:     2000,
		riskMultiplier: 2.0,
		timeMultiplier: 0.6,
	},
	Bounty: {
		description:    "Track down and eliminate target.",
		baseReward:     1500,
		riskMultiplier: 1.8,
		timeMultiplier: 0.7,
	},
	Trade: {
		description:    "Purchase specific goods and deliver them for profit.",
		baseReward:     800,
		riskMultiplier: 1.0,
		timeMultiplier: 1.0,
	},
}

var missionTypes = []Type{Delivery, Smuggling, Bounty, Trade}

var titleTemplates = map[Type][]string{
	Delivery:  {"Urgent Delivery to %s", "Transport Needed: %s", "Priority Cargo to %s"},
	Smuggling: {"Discreet Package to %s", "Silent Run to %s", "No Questions Asked: %s"},
	Bounty:    {"Wanted in %s", "Target Spotted: %s", "Elimination Contract: %s"},
	Trade:     {"Market Run: %s", "Trade Opportunity: %s", "Profitable Venture: %s"},
}

var (
	giverFirstNames = []string{"Captain", "Agent", "Merchant", "Commander", "Broker"}
	giverLastNames  = []string{"Smith", "Chen", "Kumar", "Rodriguez", "Petrov"}
)

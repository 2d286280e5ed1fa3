package mining

// Mining odds
const (
	// GoldChance is the probability that a single step finds gold
	GoldChance = 0.60

	// EncounterChance is the probability that a finished session ends in an encounter
	EncounterChance = 0.50
)

// Error message constants
const (
	ErrMsgZeroPowerFmt = "%s has mining power %d"
)

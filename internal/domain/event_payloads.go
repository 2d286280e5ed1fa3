package domain

// GameLifecyclePayload is the event payload for game.started and game.aborted events
type GameLifecyclePayload struct {
	SessionID string `json:"session_id"`
	Platform  string `json:"platform"`
	Level     int    `json:"level"`
	Credits   int    `json:"credits"`
	Timestamp int64  `json:"timestamp"`
}

// MiningCompletedPayload is the event payload for mining.completed events
type MiningCompletedPayload struct {
	SessionID  string `json:"session_id"`
	Mineral    string `json:"mineral"`
	Steps      int    `json:"steps"`
	GoldFound  int    `json:"gold_found"`
	Experience int    `json:"experience"`
	Cancelled  bool   `json:"cancelled"`
	Encounter  bool   `json:"encounter"`
	Timestamp  int64  `json:"timestamp"`
}

// LevelUpPayload is the event payload for miner.level_up events
type LevelUpPayload struct {
	SessionID string `json:"session_id"`
	NewLevel  int    `json:"new_level"`
	MaxHealth int    `json:"max_health"`
	Timestamp int64  `json:"timestamp"`
}

// FightResolvedPayload is the event payload for fight.resolved events
type FightResolvedPayload struct {
	SessionID   string `json:"session_id"`
	Enemy       string `json:"enemy"`
	Outcome     string `json:"outcome"`
	Turns       int    `json:"turns"`
	CreditsLost int    `json:"credits_lost"`
	Timestamp   int64  `json:"timestamp"`
}

// ShopPurchasePayload is the event payload for shop.purchase events
type ShopPurchasePayload struct {
	SessionID string `json:"session_id"`
	Kind      string `json:"kind"`
	Item      string `json:"item"`
	Price     int    `json:"price"`
	Success   bool   `json:"success"`
	Timestamp int64  `json:"timestamp"`
}

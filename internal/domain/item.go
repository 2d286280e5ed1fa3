package domain

// Item is anything the shop can price and a miner can equip.
type Item struct {
	Name  string `json:"name" validate:"required"`
	Price int    `json:"price" validate:"min=0"`
}

// Tool is an Item with mining power. Mining power is the number of chunks
// removed per mining step and the multiplier applied to gold found.
type Tool struct {
	Item
	MiningPower int `json:"mining_power" validate:"min=0"`
}

// Weapon is an Item with base damage dealt per attack turn. Catalog weapons
// deal at least 1 so that every fight can end.
type Weapon struct {
	Item
	Damage int `json:"damage" validate:"min=1"`
}

// OutOfStockName is shown for an exhausted shop slot
const OutOfStockName = "(out of stock)"

// Sentinels for exhausted shop slots. They carry no power or damage.
var (
	OutOfStockTool   = Tool{Item: Item{Name: OutOfStockName}}
	OutOfStockWeapon = Weapon{Item: Item{Name: OutOfStockName}}
)

// IsOutOfStock reports whether t is the exhausted-slot sentinel
func (t Tool) IsOutOfStock() bool {
	return t == OutOfStockTool
}

// IsOutOfStock reports whether w is the exhausted-slot sentinel
func (w Weapon) IsOutOfStock() bool {
	return w == OutOfStockWeapon
}

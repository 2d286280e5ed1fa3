package domain

// Platform constants
const (
	PlatformDiscord = "discord"
	PlatformConsole = "console"
)

// Tool names, in shop tier order
const (
	ToolPickaxe   = "Pickaxe"
	ToolPickaxeII = "PickaxeII"
	ToolUltraPick = "UltraPick"
)

// Weapon names, in shop tier order
const (
	WeaponHammer   = "Hammer"
	WeaponHammerII = "HammerII"
	WeaponUltraHam = "UltraHam"
)

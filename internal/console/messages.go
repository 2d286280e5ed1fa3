package console

// Screen text
const (
	TitleWelcome         = "Ready to mine?"
	TitleMenu            = "Welcome!"
	TitleClosed          = "*mining cancelled*"
	TitleMiningFmt       = "Mining %s"
	TitleMiningProgress  = "Mining %s | Gold : %d"
	TitleMiningAborted   = "Mining %s ABORTED"
	TitleCreditsFmt      = "You have %d credits."
	TitleLevelUp         = "Level up!"
	TitleEncounterFmt    = "ENEMY ENCOUNTER : %s"
	TitleRoundFmt        = "%s is still standing"
	TitlePlayerAttackFmt = "You dealt %d to %s"
	TitleEnemyAttackFmt  = "%s attacked you with %d damage"
	TitleFightWonFmt     = "You have killed %s with %d damage"
	TitleFightLostFmt    = "%s killed you with %d damage"
	TitleFleeSuccessFmt  = "You ran away from %s"
	TitleFleeRobbedFmt   = "As you fled, the %s stole %d CREDITS"
	TitleShop            = "Welcome to the Shop"
	TitleHealPurchased   = "Purchased healing potion"
	TitleItemPurchased   = "Purchased %s"
	TitleUnavailable     = "You can't purchase that."
	TitleStats           = "Your stats"
	TitleAborted         = "ABORTED GAME"

	LineChunksFmt       = "chunks remaining : %d"
	LineLevelFmt        = "Miner Lvl : %d"
	LineGoldFmt         = "gold collected : %d"
	LineAccumulatedFmt  = "Accumulated gold: %d from %s"
	LineContinue        = "continue?"
	LineHealthFmt       = "Health: %d / %d"
	LineYourHealthFmt   = "Your health : %d / %d"
	LineEnemyHealthFmt  = "%s health : %d / %d"
	LineEncounter       = "Do you wish to fight or flee?"
	LineRound           = "Fight on or flee?"
	LineFightLost       = "Your miner has fallen. Check your stats or abort to start over."
	LineFleeSuccess     = "Continue mining?"
	LineCreditsLeftFmt  = "Credits remaining : %d"
	LineMineElsewhere   = "Mine elsewhere?"
	LineYourCreditsFmt  = "Your credits : %d"
	LineHealFull        = "Health is full ! %d / %d"
	LineHealOffer       = "Heal : %d / %d for %d"
	LineWeaponOffer     = "Weapon : %s for %d"
	LineToolOffer       = "Tool : %s for %d"
	LineHealed          = "You have been healed. health : %d / %d"
	LineWeaponPurchased = "Your damage power is now %d (dmg)"
	LineToolPurchased   = "Your mining power is now %d (mp)"
	LineUnavailable     = "Not enough credits or item is out of stock"
	LineToolFmt         = "%s : %d mp"
	LineWeaponFmt       = "%s : %d dmg"
	LineCreditsFmt      = "Credits : %d"
	LineExperienceFmt   = "Experience : %d / %d"
	LineLevelNumFmt     = "Level : %d"
	LineAborted         = "All stats have been deleted"

	HintQuit      = "[q] quit"
	HintKeyFmt    = "[%c] %s"
	HintSeparator = "  "
)

// Log messages
const (
	LogMsgConsoleStarted = "Console session started"
	LogMsgConsoleQuit    = "Console session ended"
)

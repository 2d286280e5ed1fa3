package discord

// Friendly message constants for Discord responses
const (
	// Sessions
	MsgNoGame            = "⛏️ **No game running**\nStart one with `/print-mine`."
	MsgActionUnavailable = "⏳ **Not now!**\nThat button belongs to an earlier screen."
	MsgSessionBusy       = "⏳ **Whoa there!**\nYour miner is still busy."
	MsgServerBusy        = "🚧 **The mine is crowded**\nToo many miners at work, try again in a moment."

	// Configuration
	MsgInvalidMiningPower = "🔧 **Broken pick**\nYour tool has no mining power."

	MsgGenericError = "❌ Something went wrong."

	// Ping
	MsgPongFmt = "Pong! ⛏️ %d miner(s) at work."
)

// Embed text for game screens
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

	DescMiningProgressFmt = "```css\n chunks remaining : %d\n %s\n Miner Lvl : %d```"
	DescMiningAbortedFmt  = "chunks remaining : %d\n gold collected : %d"
	DescMiningCompleteFmt = "Accumulated gold: %d from %s"
	DescMiningContinueFmt = "Accumulated gold: %d from %s, continue?"
	DescHealthFmt         = "Health: %d / %d"
	DescFightHealthFmt    = "Your health : %d / %d\n%s health : %d / %d"
	DescEncounter         = "Do you wish to fight or flee?"
	DescRound             = "Fight on or flee?"
	DescFightLost         = "Your miner has fallen. Check your stats or abort to start over."
	DescFleeSuccess       = "Continue mining?"
	DescFleeRobbedFmt     = "Credits remaining : %d\nMine elsewhere?"
	DescShopFmt           = "Your credits : %d\n\n%s\n%s\n%s"
	DescHealFull          = "Health is full ! **%d / %d**"
	DescHealOffer         = "Heal : **%d / %d** for %d"
	DescWeaponOffer       = "Weapon : **%s** for %d"
	DescToolOffer         = "Tool : **%s** for %d"
	DescHealed            = "You have been healed.\nhealth : %d / %d"
	DescWeaponPurchased   = "Your damage power is now %d (dmg)"
	DescToolPurchased     = "Your mining power is now %d (mp)"
	DescUnavailable       = "*Not enough credits or item is out of stock*"
	DescStatsFmt          = "Health: %d / %d\n%s : %d mp\n%s : %d dmg\nCredits : %d\nExperience : %d / %d\nLevel : %d"
	DescAborted           = "All stats have been deleted"
)

// Log messages
const (
	LogMsgBotReady           = "Bot is ready"
	LogMsgBotRunning         = "Discord bot is now running"
	LogMsgRespondFailed      = "Failed to respond to interaction"
	LogMsgEditFailed         = "Failed to edit interaction response"
	LogMsgDeferFailed        = "Failed to acknowledge interaction"
	LogMsgCommandsChecking   = "Checking Discord commands"
	LogMsgCommandsUnchanged  = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated    = "Commands updated"
	LogMsgStartGameFailed    = "Failed to start game"
	LogMsgDispatchFailed     = "Game action failed"
	LogMsgEnqueueFailed      = "Failed to queue game action"
	LogMsgUnknownComponent   = "Ignoring unknown component"
	LogMsgHTTPServerStarting = "Starting Discord internal HTTP server"
	LogMsgHTTPServerFailed   = "Discord internal HTTP server failed"
	LogMsgHTTPShutdownFailed = "Discord internal HTTP server shutdown failed"
)

// Error formats
const (
	ErrMsgFetchCommandsFmt     = "fetch registered commands: %w"
	ErrMsgOverwriteCommandsFmt = "overwrite commands: %w"
)

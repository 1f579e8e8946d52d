package assets

// Narration for each kind of engine event.
const (
	MsgSafeAdvance      = "Safe door! You advance to the next floor."
	MsgTrapHit          = "Trap triggered! You lose a life."
	MsgPhoenixSave      = "Trap triggered! Your Phoenix Feather saves you from death!"
	MsgLoopSameFloor    = "Trap avoided! You stay on the same floor."
	MsgRelicFound       = "Bonus Room! You found a relic: %s"
	MsgMiniBoss         = "Mini-boss challenge! Guess a number between 1 and 3 to survive."
	MsgMiniBossSuccess  = "You defeated the mini-boss!"
	MsgMiniBossFail     = "You failed! Lose one life."
	MsgMiniBossNoAnswer = "You hesitate, and the mini-boss strikes."
	MsgMemoryDoor       = "Memory Door present! Recall the safe door from 2 floors ago."
	MsgAchievement      = "Achievement unlocked: %s"
	MsgGameOver         = "Game over! You reached Floor %d"
	MsgReset            = "Game reset. Ready to climb!"
	MsgResumed          = "Welcome back. You resume the climb on Floor %d."
	MsgEnterFloor       = "You enter Floor %d."
)

// AchievementTitles maps achievement ids to their announcement.
var AchievementTitles = map[string]string{
	"floor10":         "Reached Floor 10!",
	"sixDoorsInRow":   "6 Doors Survived in a Row!",
	"trapsDodged":     "Dodged 3 traps!",
	"noDamageVictory": "No Damage Victory!",
}

package tower

// AchievementID names an achievement; the values match the snapshot keys.
type AchievementID string

const (
	AchFloor10         AchievementID = "floor10"
	AchSixDoorsInRow   AchievementID = "sixDoorsInRow"
	AchTrapsDodged     AchievementID = "trapsDodged"
	AchNoDamageVictory AchievementID = "noDamageVictory"
)

const (
	floor10Floor        = 10
	sixDoorsStreak      = 6
	trapsDodgedNotice   = 3
	noDamageVictoryFrom = 11
)

// Evaluate checks the unlock rules against s and returns the updated state
// with the achievements announced by this evaluation. Latched achievements
// are never cleared. The traps-dodged notice repeats on every evaluation
// once the count reaches three.
func Evaluate(s State) (State, []AchievementID) {
	var unlocked []AchievementID
	a := &s.Achievements

	if s.Floor >= floor10Floor && !a.Floor10 {
		a.Floor10 = true
		unlocked = append(unlocked, AchFloor10)
	}
	if s.ConsecutiveSafeDoors >= sixDoorsStreak && a.SixDoorsInRow < sixDoorsStreak {
		a.SixDoorsInRow = sixDoorsStreak
		unlocked = append(unlocked, AchSixDoorsInRow)
	}
	if a.TrapsDodged >= trapsDodgedNotice {
		unlocked = append(unlocked, AchTrapsDodged)
	}
	if s.Floor >= noDamageVictoryFrom && s.NoDamageThisRun && !a.NoDamageVictory {
		a.NoDamageVictory = true
		unlocked = append(unlocked, AchNoDamageVictory)
	}
	return s, unlocked
}

// Unlocked lists the achievements a has earned, in display order.
func Unlocked(a Achievements) []AchievementID {
	var ids []AchievementID
	if a.Floor10 {
		ids = append(ids, AchFloor10)
	}
	if a.SixDoorsInRow > 0 {
		ids = append(ids, AchSixDoorsInRow)
	}
	if a.TrapsDodged > 0 {
		ids = append(ids, AchTrapsDodged)
	}
	if a.NoDamageVictory {
		ids = append(ids, AchNoDamageVictory)
	}
	return ids
}

package tower

import "fmt"

// EventKind tags a narrative event for the presentation layer.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventSafeAdvance
	EventTrapHit
	EventPhoenixSave
	EventLoopSameFloor
	EventRelicFound
	EventMiniBossChallenge
	EventMiniBossSuccess
	EventMiniBossFail
	EventAchievementUnlocked
	EventGameOver
	EventNextFloorReady
)

var eventNames = [...]string{
	EventNone:                "None",
	EventSafeAdvance:         "SafeAdvance",
	EventTrapHit:             "TrapHit",
	EventPhoenixSave:         "PhoenixSave",
	EventLoopSameFloor:       "LoopSameFloor",
	EventRelicFound:          "RelicFound",
	EventMiniBossChallenge:   "MiniBossChallenge",
	EventMiniBossSuccess:     "MiniBossSuccess",
	EventMiniBossFail:        "MiniBossFail",
	EventAchievementUnlocked: "AchievementUnlocked",
	EventGameOver:            "GameOver",
	EventNextFloorReady:      "NextFloorReady",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Cue is an opaque sound tag the collaborator maps to audio.
type Cue string

const (
	CueNone    Cue = ""
	CueTrap    Cue = "trap"
	CueSuccess Cue = "success"
	CueClick   Cue = "click"
	CueDefault Cue = "default"
)

// Event is one step of an outcome. Only the fields relevant to Kind are set.
type Event struct {
	Kind        EventKind
	Cue         Cue
	Relic       Relic         // EventRelicFound
	Achievement AchievementID // EventAchievementUnlocked
	Floor       int           // EventGameOver, EventNextFloorReady
	Doors       int           // EventNextFloorReady
	Memory      bool          // EventNextFloorReady: memory door hint
}

// Kinds lists the kinds of events in order. Handy for assertions and logs.
func Kinds(events []Event) []EventKind {
	kinds := make([]EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}

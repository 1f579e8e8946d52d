package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"mind-tower/assets"
	"mind-tower/internal/render"
	"mind-tower/internal/session"
	"mind-tower/internal/tower"
)

// Mode tracks which screen the game shows and how keys are read.
type Mode uint8

const (
	ModeClimb Mode = iota
	ModeMiniBoss
	ModeConfirmReset
	ModeConfirmQuit
	ModeGameOver
)

const maxMessages = 50

// Game is the terminal front end of one session.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sess     *session.Session
	rng      *rand.Rand // flavour text only; the engine has its own
	logger   *slog.Logger

	mode     Mode
	out      tower.Outcome
	notice   string
	selected int
	messages []string
	gameOver render.Summary
}

// New creates a Game drawing on screen. The screen must already be
// initialised; Run finalises it on return.
func New(screen tcell.Screen, sess *session.Session, rng *rand.Rand, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		sess:     sess,
		rng:      rng,
		logger:   logger,
	}
}

// Run starts or resumes the climb and loops until the player quits.
func (g *Game) Run() {
	defer g.screen.Fini()

	g.start()
	for {
		g.draw()
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return // screen finalised
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			if !g.handleKey(ev) {
				return
			}
		}
	}
}

func (g *Game) start() {
	res := g.sess.Start()
	g.apply(res)
	if st := g.sess.State(); st.Floor > 1 || len(st.LastSafeDoors) > 1 {
		g.addMessage(fmt.Sprintf(assets.MsgResumed, st.Floor))
	} else {
		g.addMessage(g.bandLore(1))
	}
}

// handleKey processes one key press. It returns false when the player quits.
func (g *Game) handleKey(ev *tcell.EventKey) bool {
	action := keyToAction(ev)
	switch g.mode {
	case ModeClimb:
		return g.climbAction(action)
	case ModeMiniBoss:
		g.miniBossAction(action)
	case ModeConfirmReset:
		if action == ActionYes {
			g.reset()
		} else {
			g.mode = ModeClimb
		}
	case ModeConfirmQuit:
		if action == ActionYes {
			return false
		}
		g.mode = ModeClimb
	case ModeGameOver:
		switch action {
		case ActionReset:
			g.reset()
		case ActionQuit, ActionCancel:
			return false
		}
	}
	return true
}

func (g *Game) climbAction(action Action) bool {
	switch {
	case action.IsDigit():
		g.choose(action.Digit())
	case action == ActionLeft:
		if g.selected > 1 {
			g.selected--
		}
	case action == ActionRight:
		if g.selected < g.out.Doors {
			g.selected++
		}
	case action == ActionConfirm:
		if g.selected > 0 {
			g.choose(g.selected)
		}
	case action == ActionReset:
		g.mode = ModeConfirmReset
	case action == ActionQuit, action == ActionCancel:
		g.mode = ModeConfirmQuit
	}
	return true
}

func (g *Game) miniBossAction(action Action) {
	var cmd tower.Command
	switch {
	case action.IsDigit():
		cmd = tower.MiniBossGuess(action.Digit())
	case action == ActionCancel:
		cmd = tower.Command{Kind: tower.CmdNoAnswer}
		g.addMessage(assets.MsgMiniBossNoAnswer)
	default:
		return
	}
	g.send(cmd)
}

func (g *Game) choose(door int) {
	if door < 1 || door > g.out.Doors {
		return
	}
	g.selected = door
	g.send(tower.ChooseDoor(door))
}

func (g *Game) send(cmd tower.Command) {
	res, err := g.sess.Apply(cmd)
	if err != nil {
		// Keys are filtered before they reach the engine, so this is a bug.
		g.logger.Error("command rejected", "kind", cmd.Kind, "error", err)
		if errors.Is(err, tower.ErrGameOver) {
			g.mode = ModeGameOver
		}
		return
	}
	g.apply(res)
}

func (g *Game) reset() {
	g.messages = nil
	g.apply(g.sess.Reset())
	g.addMessage(assets.MsgReset)
}

// apply takes in a session result: narration, sound and mode.
func (g *Game) apply(res session.Result) {
	g.out = res.Outcome
	g.notice = res.Notice
	for _, msg := range g.narrate(res.Events) {
		g.addMessage(msg)
	}
	g.play(res.Cues)

	switch res.Phase {
	case tower.PhaseMiniBoss:
		g.mode = ModeMiniBoss
	case tower.PhaseGameOver:
		st := g.sess.State()
		g.gameOver = render.Summary{
			Floor:        st.Floor,
			Achievements: achievementNames(st.Achievements),
			RelicsHeld:   len(st.Inventory),
			TrapsDodged:  st.Achievements.TrapsDodged,
		}
		g.mode = ModeGameOver
	default:
		g.mode = ModeClimb
		if g.selected > res.Doors || g.selected < 1 {
			g.selected = 1
		}
	}
}

func (g *Game) draw() {
	if g.mode == ModeGameOver {
		g.renderer.DrawGameOver(g.gameOver)
		return
	}
	st := g.sess.State()
	v := render.View{
		Floor:        g.out.Floor,
		Lives:        g.out.Lives,
		MaxLives:     tower.StartingLives,
		Doors:        g.out.Doors,
		Selected:     g.selected,
		Memory:       g.out.Memory && g.mode != ModeMiniBoss,
		Messages:     g.messages,
		Achievements: achievementNames(st.Achievements),
		Notice:       g.notice,
	}
	for _, r := range st.Inventory {
		v.Relics = append(v.Relics, assets.Relic(string(r)).Glyph+" "+string(r))
	}
	switch g.mode {
	case ModeMiniBoss:
		v.Prompt = []string{
			assets.GlyphMiniBoss + " Mini-boss! Enter a number (1-3).",
			"[Esc] refuse to answer",
		}
	case ModeConfirmReset:
		v.Prompt = []string{"Are you sure you want to reset your progress?", "[y] Yes   [any key] No"}
	case ModeConfirmQuit:
		v.Prompt = []string{"Leave the tower? Your climb is saved.", "[y] Yes   [any key] No"}
	}
	g.renderer.Draw(v)
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

func achievementNames(a tower.Achievements) []string {
	var names []string
	for _, id := range tower.Unlocked(a) {
		names = append(names, string(id))
	}
	return names
}

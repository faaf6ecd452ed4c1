// Package window runs a match in a desktop window using ebiten. It is a thin
// adapter: each Update advances the match by one frame of real time, and Draw
// paints the game's draw list with vector shapes and the debug font.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// Text scale per kind.
var textScale = map[pong.TextKind]float64{
	pong.TextScore:  3,
	pong.TextHelp:   1,
	pong.TextStatus: 2,
	pong.TextBanner: 2,
}

// borderWidth is the stroke width of the play area outline.
const borderWidth = 2

// Options configures a windowed match.
type Options struct {
	Config  config.PongConfig
	Runtime core.RuntimeConfig
	Player  audio.Player // Nil uses ebiten audio, muted unless enabled in Config
	Logger  *log.Logger  // Nil means discard
	Title   string
}

// Game implements ebiten.Game over a pong match.
type Game struct {
	game      *pong.Game
	player    audio.Player
	logger    *log.Logger
	keys      keyState
	binds     []binding
	frame     time.Duration // Real time covered by one Update
	lastState pong.State
	scratch   *ebiten.Image
}

var _ ebiten.Game = (*Game)(nil)

// New creates the ebiten game. It does not open a window.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == nil {
		opts.Player = newSoundPlayer(opts.Config.Audio)
	}

	two := opts.Config.Gameplay.TwoPlayer
	_, canMute := opts.Player.(audio.Muter)
	g := pong.New(opts.Config)
	g.Reset(opts.Runtime)
	g.SetHints(hints(two, canMute), pong.WinHint(opts.Config.Gameplay.WinScore))

	return &Game{
		game:      g,
		player:    opts.Player,
		logger:    opts.Logger,
		keys:      ebitenKeys{},
		binds:     keyBindings(two),
		frame:     opts.Runtime.TickInterval(),
		lastState: g.State(),
	}
}

// Update advances the match by one frame. ebiten calls it at a steady TPS,
// so the frame length stands in for measured elapsed time.
func (g *Game) Update() error {
	if g.keys.JustPressed(muteKey) {
		g.toggleMute()
	}

	res := g.game.Advance(readFrame(g.keys, g.binds), g.frame)
	audio.PlayAll(g.player, res.Events)

	if res.State != g.lastState {
		g.logger.Debug("state changed", "from", g.lastState, "to", res.State)
		if res.State == pong.StateWon {
			g.logger.Info("match won", "winner", res.Winner, "score", fmt.Sprintf("%d:%d", res.ScoreLeft, res.ScoreRight))
		}
		g.lastState = res.State
	}

	if res.Quit {
		g.logger.Info("quit", "score", fmt.Sprintf("%d:%d", res.ScoreLeft, res.ScoreRight))
		return ebiten.Termination
	}
	return nil
}

// toggleMute flips sound when the player supports it.
func (g *Game) toggleMute() {
	m, ok := g.player.(audio.Muter)
	if !ok {
		return
	}
	g.logger.Info("sound toggled", "on", m.ToggleMute())
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	dl := g.game.Render()
	screen.Fill(rgba(dl.Background))

	for _, r := range dl.Rects {
		x, y := float32(r.Rect.X), float32(r.Rect.Y)
		w, h := float32(r.Rect.W), float32(r.Rect.H)
		c := rgba(r.Color.RGB())

		switch {
		case r.Kind == pong.RectBall:
			cx, cy := r.Rect.Center()
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), w/2, c, true)
		case r.Filled:
			vector.DrawFilledRect(screen, x, y, w, h, c, false)
		default:
			vector.StrokeRect(screen, x, y, w, h, borderWidth, c, false)
		}
	}

	for _, t := range dl.Texts {
		g.drawText(screen, t)
	}
}

// drawText prints with the debug font onto a scratch image, then scales and
// tints it into place.
func (g *Game) drawText(screen *ebiten.Image, t pong.DrawText) {
	n := len([]rune(t.Text))
	if n == 0 {
		return
	}
	if g.scratch == nil || g.scratch.Bounds().Dx() < n*glyphW {
		g.scratch = ebiten.NewImage(max(n, 128)*glyphW, glyphH)
	}
	g.scratch.Clear()
	ebitenutil.DebugPrintAt(g.scratch, t.Text, 0, 0)

	scale := textScale[t.Kind]
	width := float64(n*glyphW) * scale
	x := t.X
	switch t.Align {
	case pong.AlignCenter:
		x -= width / 2
	case pong.AlignRight:
		x -= width
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, t.Y)
	op.ColorScale.ScaleWithColor(rgba(t.Color.RGB()))
	screen.DrawImage(g.scratch, op)
}

// Layout keeps the logical field size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.game.Field()
	return int(f.W), int(f.H)
}

// Match returns the match being played.
func (g *Game) Match() *pong.Game {
	return g.game
}

func rgba(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Run opens a window and plays until the user quits or closes it.
func Run(opts Options) error {
	if opts.Title == "" {
		opts.Title = "Pong"
	}
	g := New(opts)
	f := g.game.Field()

	ebiten.SetWindowSize(int(f.W), int(f.H))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

package platform

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spaghettifunk/pointillist/engine/core"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// keyBindings maps keys to the events they fire when pressed.
var keyBindings = map[ebiten.Key]core.SystemEventCode{
	ebiten.KeyEscape: core.EVENT_CODE_APPLICATION_QUIT,
	ebiten.KeyQ:      core.EVENT_CODE_APPLICATION_QUIT,
	ebiten.KeyM:      core.EVENT_CODE_MIRROR_TOGGLED,
	ebiten.KeyS:      core.EVENT_CODE_SNAPSHOT_REQUESTED,
}

// RunWindow opens a window that displays the host frames. It blocks until
// the window closes, the host stops or ctx is cancelled.
func RunWindow(ctx context.Context, host Host, cfg WindowConfig) error {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	g := &windowGame{ctx: ctx, host: host, width: cfg.Width, height: cfg.Height}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)

	core.LogInfo("opening window %dx%d", cfg.Width, cfg.Height)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type windowGame struct {
	ctx    context.Context
	host   Host
	width  int
	height int
	img    *ebiten.Image
}

func (g *windowGame) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	for key, code := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			core.EventFire(core.EventContext{Type: code})
		}
	}

	if err := g.host.Step(); err != nil {
		if errors.Is(err, ErrStop) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	frame := g.host.Frame()
	if frame == nil {
		return
	}
	b := frame.Bounds()
	if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(frame.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

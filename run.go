package swipe

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and frame callbacks for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// ClearColor fills the screen before Draw. Nil leaves ebiten's default.
	ClearColor color.Color
	// Update runs after the host has routed input and ticked every panel.
	Update func() error
	// Draw renders the panels using their controllers' offsets.
	Draw func(screen *ebiten.Image)
}

// Run opens a window and drives host from ebiten's game loop until the window
// closes or Update returns an error.
func Run(host *Host, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	return ebiten.RunGame(newRunner(host, cfg))
}

// runner adapts a Host to ebiten.Game.
type runner struct {
	host *Host
	cfg  RunConfig
	fps  *fpsOverlay
}

func newRunner(host *Host, cfg RunConfig) *runner {
	r := &runner{host: host, cfg: cfg}
	if cfg.ShowFPS {
		r.fps = newFPSOverlay()
	}
	return r
}

func (r *runner) Update() error {
	r.host.Update()
	if r.fps != nil {
		r.fps.update(frameDelta(ebiten.TPS()))
	}
	if r.cfg.Update != nil {
		return r.cfg.Update()
	}
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	if r.cfg.ClearColor != nil {
		screen.Fill(r.cfg.ClearColor)
	}
	if r.cfg.Draw != nil {
		r.cfg.Draw(screen)
	}
	if r.fps != nil {
		r.fps.draw(screen)
	}
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	if r.cfg.Width > 0 && r.cfg.Height > 0 {
		return r.cfg.Width, r.cfg.Height
	}
	return outsideWidth, outsideHeight
}

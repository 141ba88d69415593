// Package render draws world snapshots and particles onto a tcell screen
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dash-arena/engine"
	"github.com/lixenwraith/dash-arena/particle"
	"github.com/lixenwraith/dash-arena/status"
	"github.com/lixenwraith/dash-arena/vmath"
)

const (
	hudHeight    = 1
	barWidth     = 20
	particleCap  = 4096
	cameraFollow = 0.15
)

// Renderer composes the frame in layers: floor, walls, particles, stroke, enemies, player, HUD
type Renderer struct {
	Camera    *Camera
	Particles *ParticleField
	ShowStats bool
}

func NewRenderer(fov int64, width, height int, seed uint64) *Renderer {
	return &Renderer{
		Camera:    NewCamera(fov, width, height-hudHeight),
		Particles: NewParticleField(particleCap, seed),
	}
}

// Ingest realizes a tick's particle requests and advances existing particles
func (r *Renderer) Ingest(reqs []particle.SpawnParticles, dt time.Duration) {
	r.Particles.Update(dt)
	for _, req := range reqs {
		r.Particles.Spawn(req)
	}
}

// Resize adapts the viewport to the terminal
func (r *Renderer) Resize(width, height int) {
	r.Camera.Resize(width, max(0, height-hudHeight))
}

// Draw renders one frame; metrics may be nil
func (r *Renderer) Draw(screen tcell.Screen, snap engine.Snapshot, metrics *status.Registry) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	screen.Fill(' ', bg)
	r.Camera.Follow(snap.Player.Collider.Position, vmath.FromFloat(cameraFollow))

	r.drawRooms(screen, snap, bg)
	r.drawParticles(screen, bg)
	r.drawStroke(screen, snap.Player.Drawing, bg)
	r.drawEnemies(screen, snap.Enemies, bg)
	r.drawPlayer(screen, snap.Player, bg)
	r.drawHUD(screen, snap, metrics, bg)
}

// set draws a world-space glyph offset below the HUD row
func (r *Renderer) set(screen tcell.Screen, p vmath.Vec2, ch rune, style tcell.Style) {
	x, y := r.Camera.WorldToCell(p)
	if !r.Camera.Visible(x, y) {
		return
	}
	screen.SetContent(x, y+hudHeight, ch, nil, style)
}

func (r *Renderer) drawRooms(screen tcell.Screen, snap engine.Snapshot, bg tcell.Style) {
	floor := bg.Foreground(RgbFloor)
	for y := 0; y < r.Camera.Height; y++ {
		for x := 0; x < r.Camera.Width; x++ {
			p := r.Camera.CellToWorld(x, y)
			for i := range snap.Rooms {
				if snap.Rooms[i].Area.Contains(p) {
					screen.SetContent(x, y+hudHeight, '·', nil, floor)
					break
				}
			}
		}
	}

	wall := bg.Foreground(RgbWall)
	for _, w := range snap.Walls {
		x0, y1 := r.Camera.WorldToCell(w.Area.Min)
		x1, y0 := r.Camera.WorldToCell(w.Area.Max)
		for y := max(y0, 0); y <= min(y1, r.Camera.Height-1); y++ {
			for x := max(x0, 0); x <= min(x1, r.Camera.Width-1); x++ {
				screen.SetContent(x, y+hudHeight, '█', nil, wall)
			}
		}
	}
}

func (r *Renderer) drawParticles(screen tcell.Screen, bg tcell.Style) {
	for _, p := range r.Particles.Particles() {
		ch, color := particleStyle(p.Kind)
		life := vmath.ToFloat(p.Life())
		r.set(screen, p.Position, ch, bg.Foreground(lerpColor(RgbBackground, color, life)))
	}
}

func (r *Renderer) drawStroke(screen tcell.Screen, points []vmath.Vec2, bg tcell.Style) {
	style := bg.Foreground(RgbStroke).Bold(true)
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		// Step at half-cell resolution so consecutive vertices join
		steps := max(1, vmath.ToInt(b.Sub(a).Len()*4))
		for s := 0; s <= steps; s++ {
			t := vmath.Div(vmath.FromInt(s), vmath.FromInt(steps))
			r.set(screen, a.Lerp(b, t), '•', style)
		}
	}
}

func (r *Renderer) drawEnemies(screen tcell.Screen, enemies []engine.EnemyView, bg tcell.Style) {
	for _, e := range enemies {
		color := lerpColor(RgbEnemyLow, RgbEnemyFull, vmath.ToFloat(e.Health.Ratio()))
		if e.Kind == "Bullet" {
			color = RgbBullet
		}
		r.set(screen, e.Collider.Position, enemyGlyph(e.Kind), bg.Foreground(color).Bold(true))
	}
}

func (r *Renderer) drawPlayer(screen tcell.Screen, p engine.PlayerView, bg tcell.Style) {
	style := bg.Foreground(RgbPlayer).Bold(true)
	if p.Invincibility.IsAboveMin() {
		style = style.Foreground(RgbInvincible)
	}
	r.set(screen, p.Collider.Position, '@', style)
}

func (r *Renderer) drawHUD(screen tcell.Screen, snap engine.Snapshot, metrics *status.Registry, bg tcell.Style) {
	x := drawText(screen, 0, 0, "HP ", bg.Foreground(RgbHUD))
	x = drawBar(screen, x, 0, vmath.ToFloat(snap.Player.Health.Ratio()), bg.Foreground(RgbHUDHealth))
	x = drawText(screen, x, 0, fmt.Sprintf(" %3.0f  DASH ", vmath.ToFloat(snap.Player.Health.Current)), bg.Foreground(RgbHUD))
	x = drawText(screen, x, 0, fmt.Sprintf("%5.1f  ", vmath.ToFloat(snap.Player.DashRemaining)), bg.Foreground(RgbHUDDash))

	if snap.CanExpand {
		x = drawText(screen, x, 0, "EXPAND READY", bg.Foreground(RgbExpandReady).Bold(true))
	} else {
		x = drawText(screen, x, 0, fmt.Sprintf("%d ENEMIES", len(snap.Enemies)), bg.Foreground(RgbExpandLocked))
	}
	drawText(screen, x, 0, fmt.Sprintf("  ROOMS %d", len(snap.Rooms)), bg.Foreground(RgbHUD))

	if r.ShowStats && metrics != nil {
		row := hudHeight
		for _, s := range metrics.Snapshot() {
			drawText(screen, 0, row, fmt.Sprintf("%-18s %s", s.Key, s.Value), bg.Foreground(RgbHUD))
			row++
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func drawBar(screen tcell.Screen, x, y int, ratio float64, style tcell.Style) int {
	filled := int(ratio*barWidth + 0.5)
	for i := range barWidth {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		screen.SetContent(x+i, y, ch, nil, style)
	}
	return x + barWidth
}

// ScreenToWorld maps a screen cell, HUD rows included, to world space
func (r *Renderer) ScreenToWorld(x, y int) vmath.Vec2 {
	return r.Camera.CellToWorld(x, y-hudHeight)
}

package render

import (
	"github.com/lixenwraith/dash-arena/vmath"
)

// Camera maps world space (+Y up) to terminal cells (+row down)
// Cells are roughly twice as tall as wide, so one world unit spans two columns per row
type Camera struct {
	Center vmath.Vec2
	FOV    int64 // Visible world height
	Width  int   // Viewport in cells
	Height int
}

func NewCamera(fov int64, width, height int) *Camera {
	return &Camera{FOV: fov, Width: width, Height: height}
}

// Resize updates the viewport after a terminal resize
func (c *Camera) Resize(width, height int) {
	c.Width, c.Height = width, height
}

// rowsPerUnit is the vertical cell density in Q32.32
func (c *Camera) rowsPerUnit() int64 {
	if c.FOV <= 0 || c.Height <= 0 {
		return vmath.Scale
	}
	return vmath.Div(vmath.FromInt(c.Height), c.FOV)
}

// WorldToCell returns the cell containing p, which may lie off screen
func (c *Camera) WorldToCell(p vmath.Vec2) (x, y int) {
	d := p.Sub(c.Center)
	rpu := c.rowsPerUnit()
	x = c.Width/2 + vmath.ToInt(vmath.Floor(2*vmath.Mul(d.X, rpu)+vmath.Half))
	y = c.Height/2 - vmath.ToInt(vmath.Floor(vmath.Mul(d.Y, rpu)+vmath.Half))
	return x, y
}

// CellToWorld returns the world position at the center of cell (x, y)
func (c *Camera) CellToWorld(x, y int) vmath.Vec2 {
	rpu := c.rowsPerUnit()
	dx := vmath.Div(vmath.FromInt(x-c.Width/2), 2*rpu)
	dy := vmath.Div(vmath.FromInt(c.Height/2-y), rpu)
	return c.Center.Add(vmath.V(dx, dy))
}

// Visible reports whether the cell lies inside the viewport
func (c *Camera) Visible(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// Follow eases the camera center toward target by factor (Q32.32, 1 snaps)
func (c *Camera) Follow(target vmath.Vec2, factor int64) {
	c.Center = c.Center.Add(target.Sub(c.Center).Scale(factor))
}

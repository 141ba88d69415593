package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dash-arena/particle"
)

// Palette
var (
	RgbBackground   = tcell.NewRGBColor(12, 12, 20)
	RgbFloor        = tcell.NewRGBColor(40, 40, 56)
	RgbWall         = tcell.NewRGBColor(150, 150, 170)
	RgbPlayer       = tcell.NewRGBColor(240, 240, 255)
	RgbInvincible   = tcell.NewRGBColor(110, 200, 255)
	RgbStroke       = tcell.NewRGBColor(255, 220, 90)
	RgbEnemyFull    = tcell.NewRGBColor(230, 70, 70)
	RgbEnemyLow     = tcell.NewRGBColor(120, 40, 40)
	RgbBullet       = tcell.NewRGBColor(255, 150, 60)
	RgbHUD          = tcell.NewRGBColor(200, 200, 210)
	RgbHUDHealth    = tcell.NewRGBColor(90, 220, 120)
	RgbHUDDash      = tcell.NewRGBColor(255, 220, 90)
	RgbExpandReady  = tcell.NewRGBColor(110, 200, 255)
	RgbExpandLocked = tcell.NewRGBColor(110, 110, 120)
)

// particleStyle returns glyph and color per particle kind
func particleStyle(k particle.Kind) (rune, tcell.Color) {
	switch k {
	case particle.KindDraw, particle.KindDrawing:
		return '·', RgbStroke
	case particle.KindWallBreakable:
		return '░', RgbInvincible
	case particle.KindWallBlock:
		return '▒', RgbWall
	case particle.KindBounce:
		return '°', RgbWall
	case particle.KindDamage:
		return '*', RgbEnemyFull
	case particle.KindUpgrade:
		return '+', RgbHUDHealth
	case particle.KindHitSelf:
		return 'x', RgbBullet
	case particle.KindShield:
		return 'o', RgbInvincible
	case particle.KindHeal:
		return '+', RgbHUDHealth
	}
	return '.', RgbHUD
}

// enemyGlyph picks a rune per AI kind
func enemyGlyph(kind string) rune {
	switch kind {
	case "Bullet":
		return '•'
	case "Crawler":
		return 'c'
	case "Shooter":
		return 'S'
	case "Pacman":
		return 'C'
	case "Helicopter":
		return 'H'
	}
	return 'E'
}

// lerpColor blends two RGB colors by t in [0,1]
func lerpColor(a, b tcell.Color, t float64) tcell.Color {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 { return x + int32(float64(y-x)*t) }
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}

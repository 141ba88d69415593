package particle

// Kind selects the visual treatment of a particle burst
type Kind uint8

const (
	KindDraw Kind = iota
	KindDrawing
	KindWallBreakable
	KindWallBlock
	KindBounce
	KindDamage
	KindUpgrade
	KindHitSelf
	KindShield
	KindHeal
)

func (k Kind) String() string {
	switch k {
	case KindDraw:
		return "Draw"
	case KindDrawing:
		return "Drawing"
	case KindWallBreakable:
		return "WallBreakable"
	case KindWallBlock:
		return "WallBlock"
	case KindBounce:
		return "Bounce"
	case KindDamage:
		return "Damage"
	case KindUpgrade:
		return "Upgrade"
	case KindHitSelf:
		return "HitSelf"
	case KindShield:
		return "Shield"
	case KindHeal:
		return "Heal"
	}
	return "Unknown"
}

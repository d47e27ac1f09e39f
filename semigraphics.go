package gridview

// Semigraphics used by the built-in primitives.
const (
	// General Punctuation U+2000-U+206F
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	// Box Drawing U+2500-U+257F
	BoxDrawingsLightHorizontal      = "\u2500" // ─
	BoxDrawingsLightVertical        = "\u2502" // │
	BoxDrawingsLightDownAndRight    = "\u250C" // ┌
	BoxDrawingsLightDownAndLeft     = "\u2510" // ┐
	BoxDrawingsLightUpAndRight      = "\u2514" // └
	BoxDrawingsLightUpAndLeft       = "\u2518" // ┘
	BoxDrawingsLightArcDownAndRight = "\u256D" // ╭
	BoxDrawingsLightArcDownAndLeft  = "\u256E" // ╮
	BoxDrawingsLightArcUpAndLeft    = "\u256F" // ╯
	BoxDrawingsLightArcUpAndRight   = "\u2570" // ╰

	// Arrows and triangles for scroll bar end caps.
	BlackUpPointingTriangle    = "\u25B2" // ▲
	BlackRightPointingTriangle = "\u25B6" // ▶
	BlackDownPointingTriangle  = "\u25BC" // ▼
	BlackLeftPointingTriangle  = "\u25C0" // ◀
)

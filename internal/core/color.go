package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// PlayerColor returns the hull color used for a player's ship.
func PlayerColor(id PlayerID) Color {
	switch id {
	case Player1:
		return ColorCyan
	case Player2:
		return ColorMagenta
	default:
		return ColorWhite
	}
}

// WeaponColor returns the color used for a player's beams and torpedoes.
func WeaponColor(id PlayerID) Color {
	switch id {
	case Player1:
		return ColorYellow
	case Player2:
		return ColorOrange
	default:
		return ColorRed
	}
}

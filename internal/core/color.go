package core

// Color is the role a screen cell plays. The platform layer decides how
// each role looks.
type Color uint8

const (
	ColorDefault     Color = iota
	ColorHUD               // status line and overlays
	ColorBorder            // arena frame
	ColorObstacle          // level walls
	ColorPlayerTrail       // player's trail
	ColorPlayerHead        // player's cycle
	ColorCPUTrail          // CPU's trail
	ColorCPUHead           // CPU's cycle
	ColorWin               // overlay title after a player win
	ColorLoss              // overlay title after a loss
)

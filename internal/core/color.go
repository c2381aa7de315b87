package core

// Color is a presentation hint carried by entities, particles and events.
// Values are CSS-style hex strings ("#38bdf8"); the core never interprets
// them, hosts map them to whatever their output supports.
type Color string

// Fixed colours shared by the core and its hosts.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorPlayer  Color = "#ffffff"
	ColorAccent  Color = "#a3cdff"
	ColorDanger  Color = "#ff4d4d"
	ColorGold    Color = "#ffd700"
	ColorBoss    Color = "#ff2a2a"
	ColorHeart   Color = "#fb7185"
	ColorAmber   Color = "#fbbf24"
	ColorGray    Color = "#8a8a8a"
)

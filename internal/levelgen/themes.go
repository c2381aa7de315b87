package levelgen

import (
	"github.com/vovakirdan/flounder/internal/core"
	"github.com/vovakirdan/flounder/internal/world"
)

var (
	themeIndustrial = world.Theme{
		Name:             "Industrial Deep",
		BackgroundTop:    "#020617",
		BackgroundBottom: "#1e293b",
		PlatformColor:    "#0f172a",
		PlatformDetail:   "#334155",
		AccentColor:      "#38bdf8",
		HazardColor:      "#ef4444",
	}
	themeFoundry = world.Theme{
		Name:             "Core Foundry",
		BackgroundTop:    "#270808",
		BackgroundBottom: "#450a0a",
		PlatformColor:    "#1a0505",
		PlatformDetail:   "#7f1d1d",
		AccentColor:      "#f59e0b",
		HazardColor:      "#ff0000",
	}
	themeNeon = world.Theme{
		Name:             "Neon District",
		BackgroundTop:    "#0f0518",
		BackgroundBottom: "#2e1065",
		PlatformColor:    "#170621",
		PlatformDetail:   "#4c1d95",
		AccentColor:      "#d8b4fe",
		HazardColor:      "#d946ef",
	}
	themeEthereal = world.Theme{
		Name:             "The Ethereal",
		BackgroundTop:    "#000000",
		BackgroundBottom: "#171717",
		PlatformColor:    "#000000",
		PlatformDetail:   "#404040",
		AccentColor:      core.ColorWhite,
		HazardColor:      "#dc2626",
	}
)

// ThemeFor returns the palette used by level n.
func ThemeFor(n int) world.Theme {
	switch {
	case n <= 3:
		return themeIndustrial
	case n <= 6:
		return themeFoundry
	case n <= 9:
		return themeNeon
	default:
		return themeEthereal
	}
}

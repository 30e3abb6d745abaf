package main

// Config holds every layout and I/O parameter of a run.
// All values are compile-time defaults; there are no flags or environment overrides.
type Config struct {
	OutputDir string

	Width        int
	Height       int
	HeaderHeight int

	BoldFontPath    string
	RegularFontPath string

	TitleSize    float64
	SubtitleSize float64
	IconSize     float64
}

func defaultConfig() Config {
	return Config{
		OutputDir:       "images",
		Width:           800,
		Height:          600,
		HeaderHeight:    120,
		BoldFontPath:    "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		RegularFontPath: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		TitleSize:       60,
		SubtitleSize:    32,
		IconSize:        48,
	}
}

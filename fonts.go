package main

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSet holds the three faces used by a thumbnail.
// Subtitle is also used for the badge label.
type FontSet struct {
	Title    font.Face
	Subtitle font.Face
	Icon     font.Face

	// Fallback reports whether the built-in Go fonts were used.
	Fallback bool
}

// loadFonts loads the preferred TrueType files. If any of them fails, all
// three faces switch to the compiled-in Go fonts at the same sizes.
func loadFonts(cfg Config, log zerolog.Logger) (*FontSet, error) {
	fs, err := loadFontFiles(cfg)
	if err == nil {
		return fs, nil
	}

	log.Debug().Err(err).Msg("preferred fonts unavailable, using built-in fonts")

	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse built-in bold font: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse built-in regular font: %w", err)
	}

	return newFontSet(bold, regular, cfg, true), nil
}

func loadFontFiles(cfg Config) (*FontSet, error) {
	bold, err := readFont(cfg.BoldFontPath)
	if err != nil {
		return nil, err
	}
	regular, err := readFont(cfg.RegularFontPath)
	if err != nil {
		return nil, err
	}
	return newFontSet(bold, regular, cfg, false), nil
}

func readFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}

func newFontSet(bold, regular *truetype.Font, cfg Config, fallback bool) *FontSet {
	return &FontSet{
		Title:    truetype.NewFace(bold, &truetype.Options{Size: cfg.TitleSize}),
		Subtitle: truetype.NewFace(regular, &truetype.Options{Size: cfg.SubtitleSize}),
		Icon:     truetype.NewFace(bold, &truetype.Options{Size: cfg.IconSize}),
		Fallback: fallback,
	}
}

// inkWidth returns the horizontal extent of the glyph ink of s, matching
// how the canvas measures text for centering.
func inkWidth(face font.Face, s string) int {
	bounds, _ := font.BoundString(face, s)
	return (bounds.Max.X - bounds.Min.X).Ceil()
}

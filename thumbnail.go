package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
)

const (
	badgeText    = "ML PROJECT"
	badgePadding = 40
	badgeHeight  = 50
	badgeTop     = 480
	badgeRadius  = 25
	badgeTextTop = badgeTop + 10

	titleTop       = 20
	titleLinePitch = 50
	subtitleTop    = 200
	iconTop        = 350

	accentSize = 10
)

// Generator renders thumbnails into cfg.OutputDir and reports each file on out.
type Generator struct {
	cfg   Config
	fonts *FontSet
	out   io.Writer
	log   zerolog.Logger
}

// NewGenerator loads the fonts once; every Render reuses them.
func NewGenerator(cfg Config, out io.Writer, log zerolog.Logger) (*Generator, error) {
	fonts, err := loadFonts(cfg, log)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, fonts: fonts, out: out, log: log}, nil
}

// Render draws p and writes it to <OutputDir>/<Name>.png.
// It returns the path written.
func (g *Generator) Render(p Project) (string, error) {
	header, err := parseHexColor(p.Color)
	if err != nil {
		return "", fmt.Errorf("project %s: %w", p.Name, err)
	}

	dc := g.draw(p, header)

	outPath := filepath.Join(g.cfg.OutputDir, p.Name+".png")
	if err := savePNG(outPath, dc); err != nil {
		return "", fmt.Errorf("project %s: %w", p.Name, err)
	}

	g.log.Debug().Str("project", p.Name).Str("path", outPath).Bool("fallback_fonts", g.fonts.Fallback).Msg("thumbnail written")
	fmt.Fprintf(g.out, "Created: %s\n", outPath)
	return outPath, nil
}

func (g *Generator) draw(p Project, header color.RGBA) *gg.Context {
	w, h := g.cfg.Width, g.cfg.Height
	dc := gg.NewContext(w, h)

	dc.SetColor(color.White)
	dc.Clear()

	fillRect(dc, 0, 0, w, g.cfg.HeaderHeight, header)

	// Body rows are filled one scanline at a time with the same flat tone.
	for y := g.cfg.HeaderHeight; y < h; y++ {
		fillRect(dc, 0, y, w, 1, bodyGray)
	}

	y := titleTop
	for _, line := range strings.Split(p.Title, "\n") {
		g.drawCentered(dc, g.fonts.Title, line, y, color.White)
		y += titleLinePitch
	}

	g.drawCentered(dc, g.fonts.Subtitle, p.Subtitle, subtitleTop, subtitleGray)
	g.drawCentered(dc, g.fonts.Icon, p.Icon, iconTop, header)

	fillRect(dc, 0, 0, accentSize, accentSize, color.White)
	fillRect(dc, w-accentSize, h-accentSize, accentSize, accentSize, header)

	g.drawBadge(dc, header)
	return dc
}

// badgeRect returns the left edge and width of the badge for the current subtitle face.
func (g *Generator) badgeRect() (x, width int) {
	width = inkWidth(g.fonts.Subtitle, badgeText) + badgePadding
	x = (g.cfg.Width - width) / 2
	return x, width
}

func (g *Generator) drawBadge(dc *gg.Context, fill color.RGBA) {
	x, width := g.badgeRect()

	// The filled shape covers both end coordinates, one pixel past width and height.
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(float64(x), badgeTop, float64(width+1), badgeHeight+1, badgeRadius)
	dc.Fill()

	textW := inkWidth(g.fonts.Subtitle, badgeText)
	textX := x + (width-textW)/2
	drawText(dc, g.fonts.Subtitle, badgeText, textX, badgeTextTop, color.White)
}

// drawCentered draws s horizontally centered on the canvas with its ascender line at top.
func (g *Generator) drawCentered(dc *gg.Context, face font.Face, s string, top int, c color.Color) {
	x := (g.cfg.Width - inkWidth(face, s)) / 2
	drawText(dc, face, s, x, top, c)
}

func drawText(dc *gg.Context, face font.Face, s string, x, top int, c color.Color) {
	dc.SetFontFace(face)
	dc.SetColor(c)
	baseline := top + face.Metrics().Ascent.Ceil()
	dc.DrawString(s, float64(x), float64(baseline))
}

func fillRect(dc *gg.Context, x, y, w, h int, c color.Color) {
	dc.SetColor(c)
	dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	dc.Fill()
}

func savePNG(path string, dc *gg.Context) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := dc.EncodePNG(file); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}

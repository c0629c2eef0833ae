/*
 * colors.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package orbplot

import (
	"image/color"
	"log"
	"strconv"
	"strings"

	orbvis "github.com/staradutt/orbvis"
	"github.com/staradutt/orbvis/config"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

var namedColors = map[string]color.NRGBA{
	"black":     {0x00, 0x00, 0x00, 0xff},
	"white":     {0xff, 0xff, 0xff, 0xff},
	"red":       {0xff, 0x00, 0x00, 0xff},
	"green":     {0x00, 0xff, 0x00, 0xff},
	"blue":      {0x00, 0x00, 0xff, 0xff},
	"orange":    {0xff, 0xa5, 0x00, 0xff},
	"yellow":    {0xff, 0xff, 0x00, 0xff},
	"lightblue": {0xad, 0xd8, 0xe6, 0xff},
	"gray":      {0x80, 0x80, 0x80, 0xff},
	"purple":    {0x80, 0x00, 0x80, 0xff},
	"cyan":      {0x00, 0xff, 0xff, 0xff},
	"magenta":   {0xff, 0x00, 0xff, 0xff},
}

// ParseColor accepts a color name or a hex triplet, with or without the
// leading "#" (run files commonly leave it off to avoid the comment
// character clash with "#").
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, Error{BadColor + ": " + s, []string{"ParseColor"}}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, Error{BadColor + ": " + s, []string{"ParseColor"}}
	}
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha * 255)
	return c
}

//mapColors samples n evenly spaced colors from a named colormap.
func mapColors(name string, n int) ([]color.NRGBA, error) {
	var cmap palette.ColorMap
	switch strings.ToLower(name) {
	case "kindlmann":
		cmap = moreland.Kindlmann()
	case "extendedkindlmann":
		cmap = moreland.ExtendedKindlmann()
	case "blackbody":
		cmap = moreland.BlackBody()
	case "extendedblackbody":
		cmap = moreland.ExtendedBlackBody()
	case "smoothbluered", "coolwarm":
		cmap = moreland.SmoothBlueRed()
	case "rainbow":
		out := make([]color.NRGBA, 0, n)
		for _, c := range palette.Rainbow(n, palette.Red, palette.Blue, 1, 1, 1).Colors() {
			r, g, b, a := c.RGBA()
			out = append(out, color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)})
		}
		return out, nil
	default:
		return nil, Error{BadColormap + ": " + name, []string{"mapColors"}}
	}
	cmap.SetMin(0)
	cmap.SetMax(1)
	out := make([]color.NRGBA, n)
	for i := range out {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c, err := cmap.At(t)
		if err != nil {
			return nil, Error{BadColormap + ": " + err.Error(), []string{"mapColors"}}
		}
		r, g, b, a := c.RGBA()
		out[i] = color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	return out, nil
}

// Colors resolves a COLOR_SCHEME into exactly n colors, one per orbital
// selection. Explicit lists are padded from the rainbow palette when too
// short and truncated when too long; palette indices wrap around their
// built-in palette.
func Colors(cs config.ColorScheme, n int) ([]color.NRGBA, error) {
	switch cs.Kind {
	case config.ColorPaletteIndex:
		if cs.Index < 0 || cs.Index >= len(orbvis.BaseColors) {
			return nil, Error{BadPaletteIndex, []string{"Colors"}}
		}
		base := orbvis.BaseColors[cs.Index]
		out := make([]color.NRGBA, n)
		for i := range out {
			c, err := ParseColor(base[i%len(base)])
			if err != nil {
				return nil, errDecorate(err, "Colors")
			}
			out[i] = c
		}
		return out, nil
	case config.ColorList:
		out := make([]color.NRGBA, 0, n)
		for _, s := range cs.List {
			c, err := ParseColor(s)
			if err != nil {
				return nil, errDecorate(err, "Colors")
			}
			out = append(out, c)
		}
		if len(out) < n {
			log.Printf("orbvis: %d colors provided but %d needed, padding from the rainbow palette", len(out), n)
			extra, err := mapColors("rainbow", n-len(out))
			if err != nil {
				return nil, errDecorate(err, "Colors")
			}
			out = append(out, extra...)
		} else if len(out) > n {
			log.Printf("orbvis: more colors than needed, truncating to %d", n)
			out = out[:n]
		}
		return out, nil
	case config.ColorMap:
		return mapColors(cs.Name, n)
	}
	return nil, Error{BadColorScheme, []string{"Colors"}}
}

/*
 * config_test.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeRunFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orbvis.in")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	p := Defaults()
	require.Equal(t, 1, p.Ispin)
	require.Equal(t, 1.0, p.Scale)
	require.Equal(t, 70.0, p.Transparency)
	require.Equal(t, -5.0, p.YMin)
	require.Equal(t, 5.0, p.YMax)
	require.Equal(t, 3.0, p.XScale)
	require.Equal(t, "orbband.jpg", p.SaveAs)
	require.Equal(t, ColorPaletteIndex, p.ColorScheme.Kind)
	require.Equal(t, 2.0, p.Sigma)
	require.True(t, p.ShowTDOS)
	require.False(t, p.SOC)
	require.False(t, p.EFermiSet)
}

func TestReadFullRunFile(t *testing.T) {
	path := writeRunFile(t, `
# band structure run
PROCAR_PATH = testdata/PROCAR   # inline comment
DOSCAR_PATH = testdata/DOSCAR
ISPIN = 2
SOC = off
EFERMI = 4.25
TITLE = GaAs bands
SCALE = 15
TRANSPARENCY = 50
YMIN = -3
YMAX = 3.5
XSCALE = 4
DPI = 150
SAVEAS = bands.png
LEGEND_LOC = upper left
KLABELS = G X M G
ORBITAL_INFO = [[[0,1],"Ga",[0]],
                [[2],"As",[1,2,3]]]
COLOR_SCHEME = ["red", "0000ff"]
`)
	p, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, "testdata/PROCAR", p.ProcarPath)
	require.Equal(t, "testdata/DOSCAR", p.DoscarPath)
	require.Equal(t, 2, p.Ispin)
	require.False(t, p.SOC)
	require.True(t, p.EFermiSet)
	require.Equal(t, 4.25, p.EFermi)
	require.Equal(t, "GaAs bands", p.Title)
	require.Equal(t, 15.0, p.Scale)
	require.Equal(t, "bands.png", p.SaveAs)
	require.Equal(t, []string{"G", "X", "M", "G"}, p.KLabels)
	require.Equal(t, []OrbitalSelection{
		{Atoms: []int{0, 1}, Element: "Ga", Orbitals: []int{0}},
		{Atoms: []int{2}, Element: "As", Orbitals: []int{1, 2, 3}},
	}, p.OrbitalInfo)
	require.Equal(t, ColorList, p.ColorScheme.Kind)
	require.Equal(t, []string{"red", "0000ff"}, p.ColorScheme.List)
}

func TestColorSchemeForms(t *testing.T) {
	p, err := Read(writeRunFile(t, "COLOR_SCHEME = 1\n"))
	require.NoError(t, err)
	require.Equal(t, ColorPaletteIndex, p.ColorScheme.Kind)
	require.Equal(t, 1, p.ColorScheme.Index)

	p, err = Read(writeRunFile(t, "COLOR_SCHEME = rainbow\n"))
	require.NoError(t, err)
	require.Equal(t, ColorMap, p.ColorScheme.Kind)
	require.Equal(t, "rainbow", p.ColorScheme.Name)
}

func TestUnknownKey(t *testing.T) {
	_, err := Read(writeRunFile(t, "NO_SUCH_KEY = 1\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), UnknownKey)
}

func TestBadSaveAs(t *testing.T) {
	_, err := Read(writeRunFile(t, "SAVEAS = out.pdf\n"))
	require.Error(t, err)
}

func TestUnclosedOrbitalInfo(t *testing.T) {
	_, err := Read(writeRunFile(t, "ORBITAL_INFO = [[[0],\"Fe\",[0]],\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), UnclosedList)
}

func TestMalformedOrbitalInfo(t *testing.T) {
	_, err := Read(writeRunFile(t, "ORBITAL_INFO = [[[0],\"Fe\"]]\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), BadOrbitalInfo)
}

func TestDOSKeys(t *testing.T) {
	p, err := Read(writeRunFile(t, `
SIGMA = 0
SHOW_TDOS = off
XMIN = -6
XMAX = 6
TDOS_LINEWIDTH = 2
PDOS_LINEWIDTH = 1.5
`))
	require.NoError(t, err)
	require.Equal(t, 0.0, p.Sigma)
	require.False(t, p.ShowTDOS)
	require.True(t, p.XMinSet)
	require.Equal(t, -6.0, p.XMin)
	require.True(t, p.XMaxSet)
	require.Equal(t, 2.0, p.TDOSLineWidth)
	require.Equal(t, 1.5, p.PDOSLineWidth)
}

func TestValidateBand(t *testing.T) {
	p := Defaults()
	require.Error(t, p.ValidateBand()) //no PROCAR_PATH
	p.ProcarPath = "PROCAR"
	require.Error(t, p.ValidateBand()) //no ORBITAL_INFO
	p.OrbitalInfo = []OrbitalSelection{{Atoms: []int{0}, Element: "Fe", Orbitals: []int{0}}}
	require.NoError(t, p.ValidateBand())
	p.Ispin = 3
	require.Error(t, p.ValidateBand())
	p.Ispin = 1
	p.PlotOption = 5
	require.Error(t, p.ValidateBand())
}

func TestValidateOrbitals(t *testing.T) {
	p := Defaults()
	p.OrbitalInfo = []OrbitalSelection{{Atoms: []int{0}, Element: "Fe", Orbitals: []int{0, 3}}}
	require.NoError(t, p.ValidateOrbitals(9))

	p.OrbitalInfo = []OrbitalSelection{{Atoms: []int{0}, Element: "Fe", Orbitals: []int{12}}}
	require.Error(t, p.ValidateOrbitals(9))

	//"tot" alone is fine, mixed with individual orbitals it is not
	p.OrbitalInfo = []OrbitalSelection{{Atoms: []int{0}, Element: "Fe", Orbitals: []int{9}}}
	require.NoError(t, p.ValidateOrbitals(9))
	p.OrbitalInfo = []OrbitalSelection{{Atoms: []int{0}, Element: "Fe", Orbitals: []int{0, 9}}}
	require.Error(t, p.ValidateOrbitals(9))
}

func TestParseLiteral(t *testing.T) {
	v, err := parseLiteral(`[[1, 2], "Fe", [0.5, x]]`)
	require.NoError(t, err)
	top, ok := v.([]interface{})
	require.True(t, ok)
	require.Len(t, top, 3)
	require.Equal(t, []interface{}{1, 2}, top[0])
	require.Equal(t, "Fe", top[1])
	require.Equal(t, []interface{}{0.5, "x"}, top[2])

	_, err = parseLiteral(`[1, 2`)
	require.Error(t, err)
	_, err = parseLiteral(`[1] trailing`)
	require.Error(t, err)
}

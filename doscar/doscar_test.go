/*
 * doscar_test.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package doscar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	fixNEDOS  = 4
	fixNAtoms = 2
	fixNOrbs  = 3
	fixFermi  = 5.1234
)

func fixEnergyGrid(i int) float64 { return -5 + float64(i) }

func fixTotal(spin, i int) float64 { return 10*float64(spin+1) + float64(i) }

func fixPDOS(atom, orb, spin, i int) float64 {
	return 100*float64(atom) + 10*float64(orb) + float64(i) + 0.5*float64(spin)
}

func buildDOSCAR(ispin int) string {
	var b strings.Builder
	b.WriteString("   2   2   1   0\n")
	b.WriteString("  0.1173104E+02  0.3693684E-09  0.3693684E-09  0.3693684E-09  0.5000000E-15\n")
	b.WriteString("  1.000000000000000E-004\n")
	b.WriteString("  CAR\n")
	b.WriteString("  unnamed\n")
	fmt.Fprintf(&b, "  10.00000000 -10.00000000 %4d %12.8f  1.00000000\n", fixNEDOS, fixFermi)
	for i := 0; i < fixNEDOS; i++ {
		fmt.Fprintf(&b, " %10.4f", fixEnergyGrid(i))
		for s := 0; s < ispin; s++ {
			fmt.Fprintf(&b, " %10.4f", fixTotal(s, i))
		}
		b.WriteString("\n")
	}
	for a := 0; a < fixNAtoms; a++ {
		fmt.Fprintf(&b, "  10.00000000 -10.00000000 %4d %12.8f  1.00000000\n", fixNEDOS, fixFermi)
		for i := 0; i < fixNEDOS; i++ {
			fmt.Fprintf(&b, " %10.4f", fixEnergyGrid(i))
			for o := 0; o < fixNOrbs; o++ {
				for s := 0; s < ispin; s++ {
					fmt.Fprintf(&b, " %10.4f", fixPDOS(a, o, s, i))
				}
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeFixture(t *testing.T, ispin int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "DOSCAR")
	require.NoError(t, os.WriteFile(path, []byte(buildDOSCAR(ispin)), 0644))
	return path
}

func TestReadFermiEnergy(t *testing.T) {
	path := writeFixture(t, 1)
	ef, err := ReadFermiEnergy(path)
	require.NoError(t, err)
	require.InDelta(t, fixFermi, ef, 1e-9)
}

func TestReadTotalDOS(t *testing.T) {
	for _, ispin := range []int{1, 2} {
		path := writeFixture(t, ispin)
		energies, dos, err := ReadTotalDOS(path, ispin)
		require.NoError(t, err)
		require.Len(t, energies, fixNEDOS)
		r, c := dos.Dims()
		require.Equal(t, fixNEDOS, r)
		require.Equal(t, ispin, c)
		for i := 0; i < fixNEDOS; i++ {
			require.InDelta(t, fixEnergyGrid(i), energies[i], 1e-9)
			for s := 0; s < ispin; s++ {
				require.InDelta(t, fixTotal(s, i), dos.At(i, s), 1e-9)
			}
		}
	}
}

func TestReadAtomOrbitalDOS(t *testing.T) {
	for _, ispin := range []int{1, 2} {
		path := writeFixture(t, ispin)
		for a := 0; a < fixNAtoms; a++ {
			for o := 0; o < fixNOrbs; o++ {
				dos, err := ReadAtomOrbitalDOS(path, ispin, a, o)
				require.NoError(t, err)
				r, c := dos.Dims()
				require.Equal(t, fixNEDOS, r)
				require.Equal(t, ispin, c)
				for i := 0; i < fixNEDOS; i++ {
					for s := 0; s < ispin; s++ {
						require.InDelta(t, fixPDOS(a, o, s, i), dos.At(i, s), 1e-9,
							"ispin %d atom %d orb %d spin %d row %d", ispin, a, o, s, i)
					}
				}
			}
		}
	}
}

func TestTruncatedDOSCAR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DOSCAR")
	content := buildDOSCAR(1)
	lines := strings.SplitAfter(content, "\n")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines[:8], "")), 0644))
	_, _, err := ReadTotalDOS(path, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), Truncated)
}

func TestBadSpinRejected(t *testing.T) {
	path := writeFixture(t, 1)
	_, _, err := ReadTotalDOS(path, 3)
	require.Error(t, err)
	_, err = ReadAtomOrbitalDOS(path, 0, 0, 0)
	require.Error(t, err)
}

func TestOrbitalColumnPastRow(t *testing.T) {
	path := writeFixture(t, 1)
	_, err := ReadAtomOrbitalDOS(path, 1, 0, fixNOrbs+2)
	require.Error(t, err)
	require.Contains(t, err.Error(), BadRow)
}

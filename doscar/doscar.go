/*
 * doscar.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

// Package doscar reads Fermi energies and densities of states from VASP
// DOSCAR files, streaming them line by line. A DOSCAR is laid out by fixed
// offsets rather than block markers: five header lines, a metadata line
// carrying the energy-grid size and the Fermi energy, the total-DOS block,
// and then one metadata-plus-block section per atom.
package doscar

import (
	"bufio"
	"log"
	"strconv"
	"strings"

	orbvis "github.com/staradutt/orbvis"
	"gonum.org/v1/gonum/mat"
)

//readLine returns the next line of r. A DOSCAR ending before its declared
//counts are satisfied is truncated, which invalidates the whole read.
func readLine(r *bufio.Reader, filename string) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", Error{Truncated, filename, []string{"readLine"}, true}
	}
	return line, nil
}

func skipLines(r *bufio.Reader, n int, filename string) error {
	for i := 0; i < n; i++ {
		if _, err := readLine(r, filename); err != nil {
			return err
		}
	}
	return nil
}

//meta reads the 6th line of a DOSCAR, which carries emax, emin, the number of
//energy grid points and the Fermi energy.
func meta(r *bufio.Reader, filename string) ([]string, error) {
	if err := skipLines(r, 5, filename); err != nil {
		return nil, err
	}
	line, err := readLine(r, filename)
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}

// ReadFermiEnergy extracts the Fermi energy (in eV) from the DOSCAR at path.
func ReadFermiEnergy(path string) (float64, error) {
	log.Printf("orbvis: reading Fermi energy from %s", path)
	f, err := openReader(path)
	if err != nil {
		return 0, Error{UnableToOpen + ": " + err.Error(), path, []string{"ReadFermiEnergy"}, true}
	}
	defer f.Close()
	m, merr := meta(bufio.NewReader(f), path)
	if merr != nil {
		return 0, errDecorate(merr, "ReadFermiEnergy")
	}
	if len(m) < 4 {
		return 0, Error{BadMeta, path, []string{"ReadFermiEnergy"}, true}
	}
	efermi, perr := strconv.ParseFloat(m[3], 64)
	if perr != nil {
		return 0, Error{BadMeta + ": " + perr.Error(), path, []string{"ReadFermiEnergy"}, true}
	}
	log.Printf("orbvis: Fermi energy is %v", efermi)
	return efermi, nil
}

func nedosFrom(m []string, path string) (int, error) {
	if len(m) < 3 {
		return 0, Error{BadMeta, path, nil, true}
	}
	nedos, err := strconv.Atoi(m[2])
	if err != nil || nedos <= 0 {
		return 0, Error{BadMeta, path, nil, true}
	}
	return nedos, nil
}

//dosRow parses one DOS line into the energy grid (optional) and the DOS
//matrix. For ispin 2, column 0 is the up channel and column 1 the down
//channel, stored with the sign they carry in the file.
func dosRow(fields []string, path string, first int, ispin int, row int, dos *mat.Dense) error {
	for s := 0; s < ispin; s++ {
		idx := first + s
		if idx >= len(fields) {
			return Error{BadRow, path, nil, true}
		}
		v, err := strconv.ParseFloat(fields[idx], 64)
		if err != nil {
			return Error{BadRow + ": " + err.Error(), path, nil, true}
		}
		dos.Set(row, s, v)
	}
	return nil
}

// ReadTotalDOS extracts the energy grid and the total DOS from the DOSCAR at
// path. The returned matrix has one row per grid point and ispin columns
// (column 0 = up, column 1 = down for ispin 2).
func ReadTotalDOS(path string, ispin int) ([]float64, *mat.Dense, error) {
	if ispin != 1 && ispin != 2 {
		return nil, nil, Error{orbvis.ErrBadSpin, path, []string{"ReadTotalDOS"}, true}
	}
	log.Printf("orbvis: reading total DOS from %s", path)
	f, err := openReader(path)
	if err != nil {
		return nil, nil, Error{UnableToOpen + ": " + err.Error(), path, []string{"ReadTotalDOS"}, true}
	}
	defer f.Close()
	r := bufio.NewReader(f)
	m, merr := meta(r, path)
	if merr != nil {
		return nil, nil, errDecorate(merr, "ReadTotalDOS")
	}
	nedos, nerr := nedosFrom(m, path)
	if nerr != nil {
		return nil, nil, errDecorate(nerr, "ReadTotalDOS")
	}
	energies := make([]float64, nedos)
	dos := mat.NewDense(nedos, ispin, nil)
	for i := 0; i < nedos; i++ {
		line, lerr := readLine(r, path)
		if lerr != nil {
			return nil, nil, errDecorate(lerr, "ReadTotalDOS")
		}
		fields := strings.Fields(line)
		if len(fields) < 1+ispin {
			return nil, nil, Error{BadRow, path, []string{"ReadTotalDOS"}, true}
		}
		e, perr := strconv.ParseFloat(fields[0], 64)
		if perr != nil {
			return nil, nil, Error{BadRow + ": " + perr.Error(), path, []string{"ReadTotalDOS"}, true}
		}
		energies[i] = e
		if derr := dosRow(fields, path, 1, ispin, i, dos); derr != nil {
			return nil, nil, errDecorate(derr, "ReadTotalDOS")
		}
	}
	return energies, dos, nil
}

// ReadAtomOrbitalDOS extracts the projected DOS of one atom's orbital from the
// DOSCAR at path. atom is the 0-based ion index; orbital is the 0-based
// orbital column of the atom block. For ispin 2 the up and down channels of
// one orbital are interleaved in the file, so the up column is 1+2*orbital
// and the down column 2+2*orbital; for ispin 1 it is simply 1+orbital. The
// returned matrix has one row per grid point and ispin columns.
func ReadAtomOrbitalDOS(path string, ispin, atom, orbital int) (*mat.Dense, error) {
	if ispin != 1 && ispin != 2 {
		return nil, Error{orbvis.ErrBadSpin, path, []string{"ReadAtomOrbitalDOS"}, true}
	}
	log.Printf("orbvis: reading PDOS of atom %d orbital %d from %s", atom, orbital, path)
	f, err := openReader(path)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), path, []string{"ReadAtomOrbitalDOS"}, true}
	}
	defer f.Close()
	r := bufio.NewReader(f)
	m, merr := meta(r, path)
	if merr != nil {
		return nil, errDecorate(merr, "ReadAtomOrbitalDOS")
	}
	nedos, nerr := nedosFrom(m, path)
	if nerr != nil {
		return nil, errDecorate(nerr, "ReadAtomOrbitalDOS")
	}
	//skip the total-DOS block, the blocks of the preceding atoms (one
	//metadata line plus nedos rows each) and this atom's metadata line
	if serr := skipLines(r, nedos+atom*(1+nedos)+1, path); serr != nil {
		return nil, errDecorate(serr, "ReadAtomOrbitalDOS")
	}
	first := 1 + orbital
	if ispin == 2 {
		first = 1 + 2*orbital
	}
	dos := mat.NewDense(nedos, ispin, nil)
	for i := 0; i < nedos; i++ {
		line, lerr := readLine(r, path)
		if lerr != nil {
			return nil, errDecorate(lerr, "ReadAtomOrbitalDOS")
		}
		//for ispin 2 the up and down channels of one orbital are adjacent
		//columns, so both spins read as a contiguous pair starting at first
		if derr := dosRow(strings.Fields(line), path, first, ispin, i, dos); derr != nil {
			return nil, errDecorate(derr, "ReadAtomOrbitalDOS")
		}
	}
	return dos, nil
}

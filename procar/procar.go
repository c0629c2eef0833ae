/*
 * procar.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

// Package procar reads band eigenvalues, k-point lists and orbital
// projections from VASP PROCAR files. The files are scanned in a single
// forward pass, line by line, without ever materializing them in memory:
// a PROCAR from a production supercell run can be several gigabytes.
//
// All parsing correctness depends on line order. A walker holds the
// current spin, k-point, band and ion-row counters and a pre-allocated
// output tensor shaped by the header counts, and is advanced one line at
// a time. The same walker serves the ISPIN=1, ISPIN=2 and spin-orbit
// layouts; only the counter transitions differ.
package procar

import (
	"bufio"
	"io"
	"log"
	"strings"

	orbvis "github.com/staradutt/orbvis"
)

type mode int

const (
	modeEnergies mode = iota //band eigenvalues + k-point list
	modeOrbital              //projection of one (atom, orbital) pair
)

//walker is the block-state machine that advances over PROCAR lines.
type walker struct {
	mode     mode
	soc      bool
	nspin    int
	atom     int //0-based ion index, modeOrbital only
	orbital  int //0-based orbital column, modeOrbital only
	filename string

	nkpts  int
	nbands int

	spin    int
	kpt     int
	band    int
	ionRow  int
	skipSub bool //SOC only: the orbital-character sub-block of this band is over

	bands *orbvis.Bands
	klist orbvis.KList
}

func (w *walker) inRange() bool {
	return w.spin >= 0 && w.spin < w.nspin &&
		w.kpt >= 0 && w.kpt < w.nkpts &&
		w.band >= 0 && w.band < w.nbands
}

//advance consumes one line and mutates the counters and the output tensor.
func (w *walker) advance(raw string) error {
	line := strings.TrimSpace(raw)
	switch classify(line) {
	case blankLine, ionHeader:
		//blank lines never alter parser state; the ion header carries no data
		return nil
	case kpointHeader:
		w.kpt++
		w.band = -1
		w.ionRow = 0
		//Coordinates and weight are recorded once per unique k-point, on the
		//first spin channel only. Under SOC there is a single channel, so
		//every k-point is recorded.
		if w.mode == modeEnergies && w.spin == 0 && w.kpt < w.nkpts {
			vals := findFloats(line)
			if len(vals) < 4 {
				return Error{BadKPointLine + ": " + line, w.filename, []string{"walker.advance"}, true}
			}
			w.klist[w.kpt] = orbvis.KPoint{
				Index:  w.kpt,
				Kx:     vals[1],
				Ky:     vals[2],
				Kz:     vals[3],
				Weight: vals[len(vals)-1],
			}
		}
	case bandHeader:
		w.band++
		w.ionRow = 0
		w.skipSub = false
		if w.mode == modeEnergies && w.inRange() {
			//a malformed eigenvalue becomes 0.0 rather than aborting the pass
			w.bands.Set(w.spin, w.band, w.kpt, floatAfter(strings.Fields(line), "energy"))
		}
	case totalRow:
		if w.soc {
			//A spin-orbit PROCAR appends three spin-projection sub-blocks
			//(x, y, z) after the orbital-character block of each band, each
			//terminated by its own "tot" row. Only the first sub-block is
			//wanted; the flag stays set until the next band header.
			w.skipSub = true
			return nil
		}
		//The tot row closes a band's ion block. Once the last band of the
		//last k-point of the first channel is closed, a spin-polarized file
		//continues with the second channel's k-point blocks.
		if w.nspin == 2 && w.spin == 0 && w.kpt == w.nkpts-1 && w.band == w.nbands-1 {
			w.spin = 1
			w.kpt = -1
			w.band = -1
			w.ionRow = 0
		}
	case dataRow:
		if w.mode != modeOrbital || w.kpt < 0 || w.band < 0 || w.skipSub {
			return nil
		}
		w.ionRow++
		if w.ionRow == w.atom+1 && w.inRange() {
			//field 0 is the ion serial number; the requested orbital column
			//follows. Missing or malformed fields read as 0.0.
			w.bands.Set(w.spin, w.band, w.kpt, fieldFloat(strings.Fields(line), w.orbital+1))
		}
	}
	return nil
}

// readHeader consumes the two header lines of a PROCAR: the banner, then the
// line carrying "k-points: N ... bands: M ...". The counts are the one thing
// the extraction is meaningless without, so failure here is critical.
func readHeader(r *bufio.Reader, filename string) (nkpts, nbands int, err error) {
	if _, err := r.ReadString('\n'); err != nil {
		return 0, 0, Error{MissingCounts, filename, []string{"readHeader"}, true}
	}
	line, rerr := r.ReadString('\n')
	if rerr != nil && line == "" {
		return 0, 0, Error{MissingCounts, filename, []string{"readHeader"}, true}
	}
	fields := strings.Fields(line)
	nkpts, ok1 := intAfter(fields, "k-points:")
	nbands, ok2 := intAfter(fields, "bands:")
	if !ok1 || !ok2 {
		return 0, 0, Error{MissingCounts, filename, []string{"readHeader"}, true}
	}
	return nkpts, nbands, nil
}

//run performs the single forward pass over the file.
func (w *walker) run(path string) error {
	f, err := openReader(path)
	if err != nil {
		if _, ok := err.(orbvis.Error); ok {
			return errDecorate(err, "run")
		}
		return Error{UnableToOpen + ": " + err.Error(), path, []string{"run"}, true}
	}
	defer f.Close()
	r := bufio.NewReader(f)
	w.filename = path
	w.nkpts, w.nbands, err = readHeader(r, path)
	if err != nil {
		return errDecorate(err, "run")
	}
	w.bands = orbvis.NewBands(w.nspin, w.nbands, w.nkpts)
	if w.mode == modeEnergies {
		w.klist = make(orbvis.KList, w.nkpts)
	}
	w.kpt = -1
	w.band = -1
	for {
		line, rerr := r.ReadString('\n')
		if len(line) > 0 {
			if aerr := w.advance(line); aerr != nil {
				return errDecorate(aerr, "run")
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			return Error{ReadError + ": " + rerr.Error(), path, []string{"run"}, true}
		}
	}
	return nil
}

// ReadBandsAndKList extracts the band eigenvalues and the k-point list
// (coordinates and weights) from the PROCAR at path. The returned Bands has
// shape (bands x k-points) for ispin 1, or two such channels for ispin 2.
func ReadBandsAndKList(path string, ispin int) (*orbvis.Bands, orbvis.KList, error) {
	if ispin != 1 && ispin != 2 {
		return nil, nil, Error{orbvis.ErrBadSpin, path, []string{"ReadBandsAndKList"}, true}
	}
	log.Printf("orbvis: reading band energies and k-point list from %s", path)
	w := &walker{mode: modeEnergies, nspin: ispin}
	if err := w.run(path); err != nil {
		return nil, nil, errDecorate(err, "ReadBandsAndKList")
	}
	return w.bands, w.klist, nil
}

// ReadBandsAndKListSOC is ReadBandsAndKList for spin-orbit-coupled PROCAR
// files. Spin-orbit calculations have a single effective spin channel, so the
// returned Bands always has one channel, and coordinates are taken from every
// k-point block.
func ReadBandsAndKListSOC(path string) (*orbvis.Bands, orbvis.KList, error) {
	log.Printf("orbvis: reading band energies and k-point list (SOC) from %s", path)
	w := &walker{mode: modeEnergies, nspin: 1, soc: true}
	if err := w.run(path); err != nil {
		return nil, nil, errDecorate(err, "ReadBandsAndKListSOC")
	}
	return w.bands, w.klist, nil
}

// ReadOrbitalBands extracts the projection of one (atom, orbital) pair onto
// every band and k-point. atom is the 0-based ion index in the POSCAR order;
// orbital is the 0-based column index after the ion serial (s=0, py=1, ...).
// Validating both against the file's "tot" column is the caller's job; an
// out-of-range orbital reads as 0.0 under the missing-field rule.
func ReadOrbitalBands(path string, atom, orbital, ispin int) (*orbvis.Bands, error) {
	if ispin != 1 && ispin != 2 {
		return nil, Error{orbvis.ErrBadSpin, path, []string{"ReadOrbitalBands"}, true}
	}
	log.Printf("orbvis: reading projection of atom %d orbital %d from %s", atom, orbital, path)
	w := &walker{mode: modeOrbital, nspin: ispin, atom: atom, orbital: orbital}
	if err := w.run(path); err != nil {
		return nil, errDecorate(err, "ReadOrbitalBands")
	}
	return w.bands, nil
}

// ReadOrbitalBandsSOC is ReadOrbitalBands for spin-orbit-coupled PROCAR files.
// Only the orbital-character sub-block of each band is read; the three
// spin-projection sub-blocks that follow it are skipped.
func ReadOrbitalBandsSOC(path string, atom, orbital int) (*orbvis.Bands, error) {
	log.Printf("orbvis: reading projection (SOC) of atom %d orbital %d from %s", atom, orbital, path)
	w := &walker{mode: modeOrbital, nspin: 1, soc: true, atom: atom, orbital: orbital}
	if err := w.run(path); err != nil {
		return nil, errDecorate(err, "ReadOrbitalBandsSOC")
	}
	return w.bands, nil
}

// TotColumnIndex scans the file for the first ion header that carries a "tot"
// column and returns that column's index among the orbital columns. Requested
// orbital indices are validated against it: indices past "tot" do not exist,
// and "tot" itself cannot be mixed with individual orbitals in one selection.
func TotColumnIndex(path string) (int, error) {
	f, err := openReader(path)
	if err != nil {
		if _, ok := err.(orbvis.Error); ok {
			return -1, errDecorate(err, "TotColumnIndex")
		}
		return -1, Error{UnableToOpen + ": " + err.Error(), path, []string{"TotColumnIndex"}, true}
	}
	defer f.Close()
	r := bufio.NewReader(f)
	for {
		line, rerr := r.ReadString('\n')
		s := strings.TrimSpace(line)
		if strings.HasPrefix(s, "ion") {
			for i, tok := range strings.Fields(s)[1:] {
				if tok == "tot" {
					return i, nil
				}
			}
		}
		if rerr != nil {
			break
		}
	}
	return -1, Error{NoTotColumn, path, []string{"TotColumnIndex"}, true}
}

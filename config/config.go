/*
 * config.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

// Package config reads orbvis run files: line-oriented "KEY = value" text
// with "#" comments, where ORBITAL_INFO and COLOR_SCHEME may carry nested
// bracketed lists spanning several lines. Every key has a default; a run
// file only states what differs.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// OrbitalSelection is one entry of ORBITAL_INFO: the set of 0-based atom
// indices to sum over, the element label used in the plot legend, and the
// 0-based orbital column indices to sum over.
type OrbitalSelection struct {
	Atoms    []int
	Element  string
	Orbitals []int
}

// ColorKind says how COLOR_SCHEME was given.
type ColorKind int

const (
	ColorPaletteIndex ColorKind = iota //an index into the built-in palettes
	ColorList                         //an explicit list of colors
	ColorMap                          //a colormap name
)

// ColorScheme is the resolved COLOR_SCHEME value.
type ColorScheme struct {
	Kind  ColorKind
	Index int
	List  []string
	Name  string
}

// Params holds every run-file key. Fields mirror the keys one to one.
type Params struct {
	ProcarPath   string
	DoscarPath   string
	Ispin        int
	OrbitalInfo  []OrbitalSelection
	Scale        float64
	Transparency float64
	EFermi       float64
	EFermiSet    bool
	Title        string
	FigSizeX     float64
	FigSizeY     float64
	PlotOption   int //0 scatter, 1 parametric
	ColorScheme  ColorScheme
	YMin         float64
	YMax         float64
	LineWidth    float64
	DPI          float64
	SaveAs       string
	SOC          bool
	LegendLoc    string
	XScale       float64
	KLabels      []string

	//DOS-mode keys
	Sigma         float64
	TDOSLineWidth float64
	PDOSLineWidth float64
	XMin          float64
	XMinSet       bool
	XMax          float64
	XMaxSet       bool
	ShowTDOS      bool
}

// Defaults returns a Params with every key at its default value.
func Defaults() *Params {
	return &Params{
		Ispin:        1,
		Scale:        1,
		Transparency: 70,
		Title:        "Orbital projected Band Structure",
		FigSizeX:     10,
		FigSizeY:     6,
		PlotOption:   0,
		ColorScheme:  ColorScheme{Kind: ColorPaletteIndex, Index: 0},
		YMin:         -5.0,
		YMax:         5.0,
		LineWidth:    1.0,
		DPI:          300,
		SaveAs:       "orbband.jpg",
		LegendLoc:    "lower right",
		XScale:       3,

		Sigma:         2.0,
		TDOSLineWidth: 1.0,
		PDOSLineWidth: 1.0,
		ShowTDOS:      true,
	}
}

// Read parses the run file at path on top of the defaults.
func Read(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), []string{"Read"}}
	}
	defer f.Close()
	p := Defaults()
	scanner := bufio.NewScanner(f)
	var buffer string
	var parsingKey string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		//keep only what precedes the first inline comment
		if i := strings.Index(line, "#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
			if line == "" {
				continue
			}
		}
		if parsingKey != "" {
			buffer += line
			if strings.HasSuffix(line, "]") {
				if err := p.setBuffered(parsingKey, buffer); err != nil {
					return nil, err
				}
				parsingKey = ""
				buffer = ""
			}
			continue
		}
		if !strings.Contains(line, "=") {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		key := strings.ToUpper(strings.TrimSpace(kv[0]))
		value := strings.TrimSpace(kv[1])
		if (key == "ORBITAL_INFO" || key == "COLOR_SCHEME") &&
			strings.HasPrefix(value, "[") && !strings.HasSuffix(value, "]") {
			parsingKey = key
			buffer = value
			continue
		}
		if err := p.set(key, value); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), []string{"Read"}}
	}
	if parsingKey != "" {
		return nil, Error{fmt.Sprintf("%s: %s", UnclosedList, parsingKey), []string{"Read"}}
	}
	return p, nil
}

func (p *Params) set(key, value string) error {
	switch key {
	case "PROCAR_PATH":
		p.ProcarPath = value
	case "DOSCAR_PATH":
		p.DoscarPath = value
	case "TITLE":
		p.Title = value
	case "LEGEND_LOC":
		p.LegendLoc = value
	case "ISPIN", "PLOT_OPTION":
		v, err := strconv.Atoi(value)
		if err != nil {
			return Error{fmt.Sprintf("%s must be an integer, got %q", key, value), []string{"set"}}
		}
		if key == "ISPIN" {
			p.Ispin = v
		} else {
			p.PlotOption = v
		}
	case "SCALE", "TRANSPARENCY", "YMIN", "YMAX", "FIGSIZEX", "FIGSIZEY", "DPI", "BS_LINEWIDTH", "LINEWIDTH", "XSCALE",
		"SIGMA", "TDOS_LINEWIDTH", "PDOS_LINEWIDTH", "XMIN", "XMAX":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Error{fmt.Sprintf("%s must be a numerical value, got %q", key, value), []string{"set"}}
		}
		switch key {
		case "SCALE":
			p.Scale = v
		case "TRANSPARENCY":
			p.Transparency = v
		case "YMIN":
			p.YMin = v
		case "YMAX":
			p.YMax = v
		case "FIGSIZEX":
			p.FigSizeX = v
		case "FIGSIZEY":
			p.FigSizeY = v
		case "DPI":
			p.DPI = v
		case "BS_LINEWIDTH", "LINEWIDTH":
			p.LineWidth = v
		case "XSCALE":
			p.XScale = v
		case "SIGMA":
			p.Sigma = v
		case "TDOS_LINEWIDTH":
			p.TDOSLineWidth = v
		case "PDOS_LINEWIDTH":
			p.PDOSLineWidth = v
		case "XMIN":
			p.XMin = v
			p.XMinSet = true
		case "XMAX":
			p.XMax = v
			p.XMaxSet = true
		}
	case "EFERMI":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Error{fmt.Sprintf("EFERMI must be a float, got %q", value), []string{"set"}}
		}
		p.EFermi = v
		p.EFermiSet = true
	case "SAVEAS":
		low := strings.ToLower(value)
		if !strings.HasSuffix(low, ".jpg") && !strings.HasSuffix(low, ".png") {
			return Error{"SAVEAS must end with .jpg or .png", []string{"set"}}
		}
		p.SaveAs = value
	case "SOC":
		switch strings.ToLower(value) {
		case "true", "on", "1":
			p.SOC = true
		default:
			p.SOC = false
		}
	case "SHOW_TDOS":
		switch strings.ToLower(value) {
		case "false", "off", "0":
			p.ShowTDOS = false
		default:
			p.ShowTDOS = true
		}
	case "KLABELS":
		p.KLabels = strings.Fields(value)
	case "ORBITAL_INFO", "COLOR_SCHEME":
		return p.setBuffered(key, value)
	default:
		return Error{UnknownKey + ": " + key, []string{"set"}}
	}
	return nil
}

//setBuffered handles the two keys whose values are bracketed lists (possibly
//accumulated from several lines), plus COLOR_SCHEME's scalar forms.
func (p *Params) setBuffered(key, value string) error {
	switch key {
	case "ORBITAL_INFO":
		sel, err := parseOrbitalInfo(value)
		if err != nil {
			return err
		}
		p.OrbitalInfo = sel
	case "COLOR_SCHEME":
		cs, err := parseColorScheme(value)
		if err != nil {
			return err
		}
		p.ColorScheme = cs
	}
	return nil
}

func parseOrbitalInfo(value string) ([]OrbitalSelection, error) {
	v, err := parseLiteral(value)
	if err != nil {
		return nil, errDecorate(err, "parseOrbitalInfo")
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, Error{BadOrbitalInfo + ": not a list", []string{"parseOrbitalInfo"}}
	}
	out := make([]OrbitalSelection, 0, len(items))
	for _, it := range items {
		entry, ok := it.([]interface{})
		if !ok || len(entry) != 3 {
			return nil, Error{BadOrbitalInfo + ": each entry must be [atom_indices, element, orbital_indices]", []string{"parseOrbitalInfo"}}
		}
		atoms, err := intSlice(entry[0])
		if err != nil {
			return nil, Error{BadOrbitalInfo + ": atom_indices must be a list of integers", []string{"parseOrbitalInfo"}}
		}
		element, ok := entry[1].(string)
		if !ok {
			return nil, Error{BadOrbitalInfo + ": element must be a string", []string{"parseOrbitalInfo"}}
		}
		orbitals, err := intSlice(entry[2])
		if err != nil {
			return nil, Error{BadOrbitalInfo + ": orbital_indices must be a list of integers", []string{"parseOrbitalInfo"}}
		}
		out = append(out, OrbitalSelection{Atoms: atoms, Element: element, Orbitals: orbitals})
	}
	return out, nil
}

func parseColorScheme(value string) (ColorScheme, error) {
	//a single integer selects a built-in palette
	if idx, err := strconv.Atoi(value); err == nil {
		return ColorScheme{Kind: ColorPaletteIndex, Index: idx}, nil
	}
	if strings.HasPrefix(value, "[") {
		v, err := parseLiteral(value)
		if err != nil {
			return ColorScheme{}, errDecorate(err, "parseColorScheme")
		}
		items, ok := v.([]interface{})
		if !ok {
			return ColorScheme{}, Error{BadColorScheme, []string{"parseColorScheme"}}
		}
		list := make([]string, 0, len(items))
		for _, it := range items {
			switch c := it.(type) {
			case string:
				list = append(list, c)
			case int:
				//unquoted hex digits parse as integers; keep the raw form
				list = append(list, strconv.Itoa(c))
			default:
				return ColorScheme{}, Error{BadColorScheme + ": entries must be color strings", []string{"parseColorScheme"}}
			}
		}
		return ColorScheme{Kind: ColorList, List: list}, nil
	}
	//anything else is a colormap name
	return ColorScheme{Kind: ColorMap, Name: strings.Trim(value, `"'`)}, nil
}

func intSlice(v interface{}) ([]int, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("not a list")
	}
	out := make([]int, 0, len(items))
	for _, it := range items {
		n, ok := it.(int)
		if !ok {
			return nil, fmt.Errorf("not an integer")
		}
		out = append(out, n)
	}
	return out, nil
}

// ValidateBand checks the keys a band-structure run needs.
func (p *Params) ValidateBand() error {
	if p.ProcarPath == "" {
		return Error{"PROCAR_PATH is required", []string{"ValidateBand"}}
	}
	if p.OrbitalInfo == nil {
		return Error{"ORBITAL_INFO is required and cannot be empty", []string{"ValidateBand"}}
	}
	if p.Ispin != 1 && p.Ispin != 2 {
		return Error{"ISPIN must be 1 or 2", []string{"ValidateBand"}}
	}
	if p.PlotOption != 0 && p.PlotOption != 1 {
		return Error{"PLOT_OPTION must be 0 or 1", []string{"ValidateBand"}}
	}
	return nil
}

// ValidateDOS checks the keys a DOS run needs.
func (p *Params) ValidateDOS() error {
	if p.DoscarPath == "" {
		return Error{"DOSCAR_PATH is required", []string{"ValidateDOS"}}
	}
	if p.OrbitalInfo == nil {
		return Error{"ORBITAL_INFO is required and cannot be empty", []string{"ValidateDOS"}}
	}
	if p.Ispin != 1 && p.Ispin != 2 {
		return Error{"ISPIN must be 1 or 2", []string{"ValidateDOS"}}
	}
	return nil
}

// ValidateOrbitals checks every orbital selection against the "tot" column
// index detected in the PROCAR: an orbital index past the total column does
// not exist, and the total column cannot be mixed with individual orbitals
// in the same selection.
func (p *Params) ValidateOrbitals(totIndex int) error {
	for _, sel := range p.OrbitalInfo {
		hasTot := false
		for _, orb := range sel.Orbitals {
			if orb > totIndex {
				return Error{fmt.Sprintf("orbital index %d exceeds total index %d", orb, totIndex), []string{"ValidateOrbitals"}}
			}
			if orb == totIndex {
				hasTot = true
			}
		}
		if hasTot && len(sel.Orbitals) > 1 {
			return Error{"don't mix the 'tot' orbital with others in one selection", []string{"ValidateOrbitals"}}
		}
	}
	return nil
}

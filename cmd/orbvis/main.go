/*
 * main.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	orbvis "github.com/staradutt/orbvis"
	"github.com/staradutt/orbvis/config"
	"github.com/staradutt/orbvis/orbplot"
)

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <band|dos> [options] runfile\n", prog)
	fmt.Fprintf(os.Stderr, "\nPlot orbital-projected band structures and densities of states from VASP output.\n")
	fmt.Fprintf(os.Stderr, "The run file holds the PROCAR/DOSCAR paths, orbital selections and figure settings.\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	fmt.Fprintf(os.Stderr, "  -labels \"G X M G\"   high-symmetry point labels, in path order (band mode)\n")
	fmt.Fprintf(os.Stderr, "  -version            print the version and exit\n")
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  %s band orbvis.in -labels \"G X M G\"\n", prog)
	fmt.Fprintf(os.Stderr, "  %s dos orbvis.in\n", prog)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	mode := os.Args[1]
	if mode == "-version" || mode == "--version" {
		fmt.Println("orbvis " + orbvis.Version)
		return
	}
	if mode != "band" && mode != "dos" {
		usage()
	}

	fs := flag.NewFlagSet(mode, flag.ExitOnError)
	labels := fs.String("labels", "", "space-separated high-symmetry point labels, in path order")
	version := fs.Bool("version", false, "print the version and exit")
	fs.Parse(os.Args[2:])
	if *version {
		fmt.Println("orbvis " + orbvis.Version)
		return
	}
	if fs.NArg() != 1 {
		usage()
	}

	cfg, err := config.Read(fs.Arg(0))
	if err != nil {
		die(err)
	}
	if *labels != "" {
		cfg.KLabels = strings.Fields(*labels)
	}

	switch mode {
	case "band":
		err = orbplot.BandScatter(cfg)
	case "dos":
		err = orbplot.DOS(cfg)
	}
	if err != nil {
		die(err)
	}
	fmt.Println("wrote", cfg.SaveAs)
}

//die prints the error, with its decoration trail when it carries one, and
//exits non-zero.
func die(err error) {
	fmt.Fprintln(os.Stderr, "orbvis:", err)
	if dec, ok := err.(orbvis.Error); ok {
		if trail := dec.Decorate(""); len(trail) > 0 {
			fmt.Fprintln(os.Stderr, "  via:", strings.Join(trail, " <- "))
		}
	}
	os.Exit(1)
}

/*
 * literal.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package config

import (
	"strconv"
	"strings"
)

//A small recursive-descent parser for the bracketed-list literals that
//ORBITAL_INFO and COLOR_SCHEME carry: nested lists of integers, floats and
//(optionally quoted) strings, e.g. [[[0,1],"Fe",[4,5]],[[2],"O",[0]]].

type literalParser struct {
	s string
	i int
}

// parseLiteral parses one complete literal and requires the whole input to be
// consumed.
func parseLiteral(s string) (interface{}, error) {
	p := &literalParser{s: s}
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.i != len(p.s) {
		return nil, Error{BadLiteral + ": trailing characters", []string{"parseLiteral"}}
	}
	return v, nil
}

func (p *literalParser) skipSpace() {
	for p.i < len(p.s) && (p.s[p.i] == ' ' || p.s[p.i] == '\t') {
		p.i++
	}
}

func (p *literalParser) value() (interface{}, error) {
	if p.i >= len(p.s) {
		return nil, Error{BadLiteral + ": unexpected end of input", []string{"value"}}
	}
	switch c := p.s[p.i]; {
	case c == '[':
		return p.list()
	case c == '"' || c == '\'':
		return p.quoted(c)
	default:
		return p.bare()
	}
}

func (p *literalParser) list() (interface{}, error) {
	p.i++ //consume '['
	var out []interface{}
	for {
		p.skipSpace()
		if p.i >= len(p.s) {
			return nil, Error{BadLiteral + ": unterminated list", []string{"list"}}
		}
		if p.s[p.i] == ']' {
			p.i++
			if out == nil {
				out = []interface{}{}
			}
			return out, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		p.skipSpace()
		if p.i < len(p.s) && p.s[p.i] == ',' {
			p.i++
		}
	}
}

func (p *literalParser) quoted(quote byte) (interface{}, error) {
	p.i++ //consume the opening quote
	start := p.i
	for p.i < len(p.s) && p.s[p.i] != quote {
		p.i++
	}
	if p.i >= len(p.s) {
		return nil, Error{BadLiteral + ": unterminated string", []string{"quoted"}}
	}
	v := p.s[start:p.i]
	p.i++ //consume the closing quote
	return v, nil
}

//bare reads an unquoted token up to the next delimiter and interprets it as
//an integer, a float, or a plain string, in that order.
func (p *literalParser) bare() (interface{}, error) {
	start := p.i
	for p.i < len(p.s) {
		c := p.s[p.i]
		if c == ',' || c == ']' || c == '[' || c == ' ' || c == '\t' {
			break
		}
		p.i++
	}
	tok := strings.TrimSpace(p.s[start:p.i])
	if tok == "" {
		return nil, Error{BadLiteral + ": empty token", []string{"bare"}}
	}
	if n, err := strconv.Atoi(tok); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f, nil
	}
	return tok, nil
}

// Package dna implements the input file grammar: a line-oriented stream
// of DNA blocks, each terminated by a step-count line, optionally
// interspersed with comments and blank-line separators.
//
// Lines classify as blank, all-digit-or-space (the block terminator),
// '#'-prefixed (comment), or DNA. Every non-blank line is echoed back to
// the caller as it is read, except the terminator line itself, which is
// never echoed.
package dna

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"turmite/heading"
	"turmite/simerr"
	"turmite/transition"
)

// Block is one fully-parsed ant specification: its transition table, its
// background color C0, and its step budget.
type Block struct {
	Table      *transition.Table
	Background byte
	StepBudget int
}

// EchoFunc is called with every line the parser reads verbatim, in
// stream order: comments and DNA lines are echoed; blank and terminator
// lines are not.
type EchoFunc func(line string)

// Parser reads ant specification blocks from r one at a time.
type Parser struct {
	scanner *bufio.Scanner
	echo    EchoFunc
	builder *transition.Builder
	bg      byte
	bgSet   bool
}

// New returns a Parser reading from r. echo may be nil to discard echoed
// lines.
func New(r io.Reader, echo EchoFunc) *Parser {
	if echo == nil {
		echo = func(string) {}
	}
	return &Parser{
		scanner: bufio.NewScanner(r),
		echo:    echo,
		builder: transition.NewBuilder(),
	}
}

// Next reads and parses the next block from the stream. It returns
// io.EOF when the stream is exhausted with no pending block. A
// MalformedDNALine error aborts only the current block; the caller may
// call Next again to resume at the next block (the current block's
// partial state has already been reset).
func (p *Parser) Next() (*Block, error) {
	for p.scanner.Scan() {
		line := strings.TrimSpace(p.scanner.Text())

		switch classify(line) {
		case lineBlank:
			continue

		case lineComment:
			p.echo(line)
			continue

		case lineStepCount:
			// Not echoed: only the parsed step count is surfaced, as part
			// of the output contract's "<R>" line, never the raw
			// terminator text.
			n, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				// classify admits any mix of digits and whitespace, so
				// this fails for interior whitespace ("1 2") or a count
				// too large for int; that is reported as an IOError.
				return nil, simerr.Wrap(simerr.IOError, "parsing step count", err)
			}
			block := &Block{
				Table:      p.builder.Build(),
				Background: p.bg,
				StepBudget: n,
			}
			p.builder.Reset()
			p.bg = 0
			p.bgSet = false
			return block, nil

		default: // DNA line
			p.echo(line)
			if err := p.parseDNALine(line); err != nil {
				// Drain the rest of this block so the builder state
				// doesn't bleed into the next one, then surface the
				// error; the caller skips to the next block.
				p.builder.Reset()
				p.bg = 0
				p.bgSet = false
				p.skipToTerminator()
				return nil, err
			}
		}
	}
	if err := p.scanner.Err(); err != nil {
		return nil, simerr.Wrap(simerr.IOError, "reading input", err)
	}
	return nil, io.EOF
}

// skipToTerminator consumes lines up to and including the next
// step-count line, so a malformed block doesn't desynchronize the
// parser from subsequent blocks.
func (p *Parser) skipToTerminator() {
	for p.scanner.Scan() {
		line := strings.TrimSpace(p.scanner.Text())
		if classify(line) == lineStepCount {
			return
		}
	}
}

func (p *Parser) parseDNALine(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return simerr.New(simerr.MalformedDNALine, fmt.Sprintf("expected 3 tokens, got %d: %q", len(fields), line))
	}
	colorTok, dirs, states := fields[0], fields[1], fields[2]
	if len(colorTok) != 1 {
		return simerr.New(simerr.MalformedDNALine, fmt.Sprintf("color token must be one character: %q", colorTok))
	}
	if len(dirs) != heading.NumHeadings {
		return simerr.New(simerr.MalformedDNALine, fmt.Sprintf("dirs must have length %d: %q", heading.NumHeadings, dirs))
	}
	if len(states) != heading.NumHeadings {
		return simerr.New(simerr.MalformedDNALine, fmt.Sprintf("states must have length %d: %q", heading.NumHeadings, states))
	}

	var row transition.Row
	for i := 0; i < heading.NumHeadings; i++ {
		h, ok := heading.FromByte(dirs[i])
		if !ok {
			return simerr.New(simerr.MalformedDNALine, fmt.Sprintf("invalid heading character %q in dirs %q", dirs[i], dirs))
		}
		row[i] = transition.Rule{NextHeading: h, NextColor: states[i]}
	}

	color := colorTok[0]
	p.builder.Define(color, row)
	if !p.bgSet {
		p.bg = color
		p.bgSet = true
	}
	return nil
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineStepCount
	lineDNA
)

func classify(line string) lineKind {
	if line == "" {
		return lineBlank
	}
	if line[0] == '#' {
		return lineComment
	}
	if isDigitsOrSpace(line) {
		return lineStepCount
	}
	return lineDNA
}

func isDigitsOrSpace(s string) bool {
	hasDigit := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			hasDigit = true
			continue
		}
		if r == ' ' || r == '\t' {
			continue
		}
		return false
	}
	return hasDigit
}

// This file is part of GopherPC.
//
// GopherPC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPC.  If not, see <https://www.gnu.org/licenses/>.

// Package monitor is an interactive terminal onto the machine. It reads
// register-level commands (peek, poke, routing summaries) and is intended
// for exploring chipset behaviour and for checking what a BIOS has done to
// the configuration space.
//
// When attached to a real terminal the monitor switches it to cbreak mode
// for character-at-a-time input; otherwise input is read line by line, which
// makes the monitor scriptable through a pipe.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/gopherpc/curated"
	"github.com/jetsetilly/gopherpc/hardware"
	"github.com/jetsetilly/gopherpc/monitor/easyterm"
)

const prompt = "(hb4) "

// Monitor is an interactive session onto a single machine.
type Monitor struct {
	pc *hardware.PC

	input  *os.File
	output io.Writer

	// real is true if input is a real terminal. cbreak input requires a
	// real terminal
	real bool
	term easyterm.Terminal

	// line reader for when input is not a real terminal
	lines *bufio.Scanner
}

// NewMonitor is the preferred method of initialisation for the Monitor
// type.
func NewMonitor(pc *hardware.PC) *Monitor {
	m := &Monitor{
		pc:     pc,
		input:  os.Stdin,
		output: os.Stdout,
	}
	m.real = term.IsTerminal(int(m.input.Fd()))
	return m
}

// Run the monitor until the quit command or the end of input.
func (m *Monitor) Run() error {
	if m.real {
		if err := m.term.Initialise(m.input, os.Stdout); err != nil {
			return curated.Errorf("monitor: %v", err)
		}
		defer m.term.CleanUp()
	} else {
		m.lines = bufio.NewScanner(m.input)
	}

	for {
		input, err := m.read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		quit, err := m.parseCommand(input)
		if err != nil {
			m.printf("* %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (m *Monitor) printf(s string, a ...interface{}) {
	if m.real {
		m.term.Print(s, a...)
	} else {
		io.WriteString(m.output, fmt.Sprintf(s, a...))
	}
}

// read one command from the input. in cbreak mode input is gathered a
// character at a time with rudimentary editing (backspace only).
func (m *Monitor) read() (string, error) {
	if !m.real {
		if !m.lines.Scan() {
			if err := m.lines.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return m.lines.Text(), nil
	}

	m.term.CBreakMode()
	defer m.term.CanonicalMode()

	m.term.Print(prompt)

	input := make([]byte, 0, 255)
	buf := make([]byte, 1)

	for {
		_, err := m.input.Read(buf)
		if err != nil {
			return "", err
		}

		switch buf[0] {
		case easyterm.KeyCtrlC:
			m.term.Print("\n")
			return "", io.EOF

		case easyterm.KeyCarriageReturn, '\n':
			m.term.Print("\n")
			return string(input), nil

		case easyterm.KeyBackspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
				m.term.Print("\b \b")
			}

		default:
			// ignore everything outside of printable ASCII. escape
			// sequences for cursor keys fall through here too
			if buf[0] >= 32 && buf[0] < 127 {
				input = append(input, buf[0])
				m.term.Print("%c", buf[0])
			}
		}
	}
}

func fields(input string) []string {
	return strings.Fields(strings.TrimSpace(input))
}

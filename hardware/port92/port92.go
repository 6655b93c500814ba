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

// Package port92 implements the PS/2 system control port at IO address 0x92.
// The port provides a fast CPU reset (bit 0) and the A20 gate (bit 1),
// bypassing the keyboard controller. Chipsets instantiate it during their
// own bring-up.
package port92

import (
	"fmt"

	"github.com/jetsetilly/gopherpc/logger"
)

// Address of the system control port.
const Address = 0x92

// Port92 is the system control port device.
type Port92 struct {
	value uint8

	// onFastReset is called on a 0 to 1 transition of bit 0
	onFastReset func()
}

// NewPort92 is the preferred method of initialisation for the Port92 type.
// The onFastReset function is called when software requests a fast reset. A
// nil function is allowed.
func NewPort92(onFastReset func()) *Port92 {
	return &Port92{
		onFastReset: onFastReset,
	}
}

// Read the current value of the port. The fast reset bit always reads back
// as zero.
func (p *Port92) Read() uint8 {
	return p.value & 0xfe
}

// Write a value to the port. A 0 to 1 transition of bit 0 pulses the CPU
// reset line. Bit 1 opens or closes the A20 gate.
func (p *Port92) Write(value uint8) {
	prev := p.value
	p.value = value

	if value&0x01 == 0x01 && prev&0x01 == 0x00 {
		logger.Log("port92", "fast reset requested")
		if p.onFastReset != nil {
			p.onFastReset()
		}
	}
}

// A20Enabled returns the state of the A20 gate.
func (p *Port92) A20Enabled() bool {
	return p.value&0x02 == 0x02
}

func (p *Port92) String() string {
	return fmt.Sprintf("port 92: %#02x (a20=%v)", p.Read(), p.A20Enabled())
}

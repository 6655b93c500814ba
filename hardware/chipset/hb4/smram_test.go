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

package hb4_test

import (
	"testing"

	"github.com/jetsetilly/gopherpc/hardware/bus"
	"github.com/jetsetilly/gopherpc/hardware/chipset/hb4"
	"github.com/jetsetilly/gopherpc/test"
)

func TestSMRAMHidden(t *testing.T) {
	f := newTestHB4(t)
	f.sm.reset()

	f.dev.Write(0, hb4.SMRAMControl, 0x00)

	// previous state is dropped before the register value is reapplied
	test.Equate(t, f.sm.disables, 1)

	test.Equate(t, len(f.sm.enables), 1)
	e := f.sm.enables[0]
	test.Equate(t, e.guestBase, 0x000a0000)
	test.Equate(t, e.length, 0x20000)
	test.Equate(t, e.visibleInSMM, true)
	test.Equate(t, e.visibleOutsideSMM, false)

	// bit 5 clear means no alias routing at all
	test.Equate(t, len(f.sm.aliases), 0)
}

func TestSMRAMLocalAccess(t *testing.T) {
	f := newTestHB4(t)
	f.sm.reset()

	f.dev.Write(0, hb4.SMRAMControl, 0x21)

	test.Equate(t, len(f.sm.enables), 1)
	test.Equate(t, f.sm.enables[0].visibleOutsideSMM, true)

	// both alias slots divert data cycles
	test.Equate(t, len(f.sm.aliases), 2)
	test.Equate(t, f.sm.aliases[0].alias, 0)
	test.Equate(t, f.sm.aliases[1].alias, 1)
	for _, a := range f.sm.aliases {
		test.Equate(t, a.base, 0x000a0000)
		test.Equate(t, a.length, 0x20000)
		test.Equate(t, uint8(a.mode), uint8(bus.AliasDivertData))
	}
}

func TestSMRAMSplitRouting(t *testing.T) {
	f := newTestHB4(t)
	f.sm.reset()

	// bit 5 set with bit 0 clear routes through the second alias slot only
	f.dev.Write(0, hb4.SMRAMControl, 0x20)

	test.Equate(t, len(f.sm.aliases), 1)
	test.Equate(t, f.sm.aliases[0].alias, 1)
	test.Equate(t, uint8(f.sm.aliases[0].mode), uint8(bus.AliasDivertData))
}

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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopherpc/hardware"
	"github.com/jetsetilly/gopherpc/hardware/bus"
	"github.com/jetsetilly/gopherpc/hardware/chipset/hb4"
	"github.com/jetsetilly/gopherpc/hardware/pci"
	"github.com/jetsetilly/gopherpc/test"
)

func TestAssembly(t *testing.T) {
	pc, err := hardware.NewPC()
	test.ExpectedSuccess(t, err)

	test.Equate(t, pc.PCI.Label(pci.NorthbridgeSlot), "UMC HB4 (8881F)")
	test.ExpectedSuccess(t, pc.Port92 != nil)

	// the chipset's reset left SMRAM enabled, visible inside SMM only
	m, ok := pc.SMRAM.Mapping(bus.SMRAMHandle(0))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, m.GuestBase, 0x000a0000)
	test.Equate(t, m.VisibleInSMM, true)
	test.Equate(t, m.VisibleOutsideSMM, false)
}

func TestShadowEndToEnd(t *testing.T) {
	pc, err := hardware.NewPC()
	test.ExpectedSuccess(t, err)

	// shadow the whole C0000-DFFFF area for reading, write protected
	pc.PCI.WriteConfig(pci.NorthbridgeSlot, 0, hb4.ShadowRead, 0xff)
	pc.PCI.WriteConfig(pci.NorthbridgeSlot, 0, hb4.ShadowWrite, 0xc0)

	flushes := pc.Mem.FlushGeneration()
	test.ExpectedSuccess(t, flushes >= 2)

	w, ok := pc.Mem.Window(0x000c0000)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, w.Read.String(), "internal")
	test.Equate(t, w.Write.String(), "external")

	w, ok = pc.Mem.Window(0x000e0000)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, w.Read.String(), "internal")
	test.Equate(t, w.Write.String(), "external")
}

func TestCacheEndToEnd(t *testing.T) {
	pc, err := hardware.NewPC()
	test.ExpectedSuccess(t, err)

	test.ExpectedFailure(t, pc.CacheExternal())
	pc.PCI.WriteConfig(pci.NorthbridgeSlot, 0, hb4.CacheControl, 0x80)
	test.ExpectedSuccess(t, pc.CacheExternal())
}

func TestFastReset(t *testing.T) {
	pc, err := hardware.NewPC()
	test.ExpectedSuccess(t, err)

	test.Equate(t, pc.FastResets(), 0)
	pc.Port92.Write(0x01)
	test.Equate(t, pc.FastResets(), 1)
}

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

package hb4

import (
	"github.com/jetsetilly/gopherpc/hardware/bus"
	"github.com/jetsetilly/gopherpc/hardware/memory/memorymap"
)

// SMRAM region handled by the chip. Always the video memory area
// A0000-BFFFF, backed by the same host addresses.
const (
	smramBase   = memorymap.VideoOrigin
	smramLength = memorymap.VideoMemtop - memorymap.VideoOrigin + 1
)

// updateSMRAM rebuilds SMRAM state from the current value of the
// SMRAMControl register. All previous mappings are disabled first so the
// state after the call depends only on the register value.
func (dev *HB4) updateSMRAM() {
	r60 := dev.conf[SMRAMControl]

	dev.sm.DisableAll()

	// bit 0, if set, enables SMRAM access outside of SMM. SMRAM is always
	// enabled inside SMM and is always at A0000-BFFFF
	dev.sm.Enable(dev.smram, smramBase, smramBase, smramLength, r60&0x01 == 0x01, true)

	// bit 5 sends data cycles to PCI and code cycles to DRAM. the Samsung
	// SPC7700P-LW relies on this
	if r60&0x20 == 0x20 {
		if r60&0x01 == 0x01 {
			dev.sm.SetAliasRouting(0, smramBase, smramLength, bus.AliasDivertData)
		}
		dev.sm.SetAliasRouting(1, smramBase, smramLength, bus.AliasDivertData)
	}
}

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
	"github.com/jetsetilly/gopherpc/hardware/memory/memorymap"
)

// shadow window geometry. one 128KB window covers the E and F segments; the
// C and D segments are a 32KB window at C0000 and five 32KB windows stepping
// up from C8000 in 16KB increments.
const (
	biosBase   uint32 = 0x000e0000
	biosLength uint32 = 0x00020000

	adapterBase          = memorymap.UpperOrigin
	adapterLength uint32 = 0x00008000

	steppedBase uint32 = 0x000c8000
	steppedSize uint32 = 0x00004000
	numStepped         = 5
)

// shadow recomputes the read/write routing of every shadow window from the
// current values of the ShadowRead and ShadowWrite registers. The
// recomputation is a pure function of the two registers: the same values
// always produce the same routing calls.
//
// When the global enable bit (ShadowRead bit 0) is clear the C and D segment
// windows are left with whatever routing they last had. This mirrors the
// behaviour observed on the real chip, which never explicitly disables
// those windows.
func (dev *HB4) shadow() {
	r54 := dev.conf[ShadowRead]
	r55 := dev.conf[ShadowWrite]

	read := memorymap.ExternalAny
	if r55&0x80 == 0x80 {
		read = memorymap.Internal
	}

	write := memorymap.Internal
	if r55&0x40 == 0x40 {
		write = memorymap.ExternalAny
	}

	dev.mem.SetRegionPermissions(biosBase, biosLength, read, write)

	if r54&0x01 == 0x01 {
		if r54&0x02 == 0x02 {
			dev.mem.SetRegionPermissions(adapterBase, adapterLength, memorymap.Internal, write)
		} else {
			dev.mem.SetRegionPermissions(adapterBase, adapterLength, memorymap.ExternalAny, memorymap.ExternalAny)
		}

		for i := 0; i < numStepped; i++ {
			base := steppedBase + uint32(i)*steppedSize
			if (r54>>i)&0x04 == 0x04 {
				dev.mem.SetRegionPermissions(base, adapterLength, memorymap.Internal, write)
			} else {
				dev.mem.SetRegionPermissions(base, adapterLength, memorymap.ExternalAny, memorymap.ExternalAny)
			}
		}
	}

	// routing changes must be visible to the very next memory access
	dev.mem.FlushTranslationCache()
}

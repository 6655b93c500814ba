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

// Package memorymap describes how the upper memory area of a PC is divided
// and how accesses to it can be routed. The chipset assigns a read routing
// and a write routing to each window in the area; the memory subsystem
// enforces them.
package memorymap

// Access describes where a memory cycle inside a window is routed.
type Access int

// Valid Access values. An access routed ExternalAny is put on the external
// bus and can be claimed by any device (typically a ROM or a VGA card). An
// access routed Internal goes to system DRAM, which is how BIOS shadowing
// works.
const (
	ExternalAny Access = iota
	Internal
)

func (a Access) String() string {
	switch a {
	case ExternalAny:
		return "external"
	case Internal:
		return "internal"
	}
	panic("unknown access routing")
}

// The upper memory area. Adapter ROM/RAM windows (the C and D segments) and
// the BIOS area (the E and F segments).
const (
	UpperOrigin uint32 = 0x000c0000
	UpperMemtop uint32 = 0x000fffff
)

// The video memory area. SMRAM is mapped over this area when enabled.
const (
	VideoOrigin uint32 = 0x000a0000
	VideoMemtop uint32 = 0x000bffff
)

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

// PCI identity of the UM8881F.
const (
	VendorID uint16 = 0x1060
	DeviceID uint16 = 0x8881
)

// The documented configuration registers.
//
// CacheControl: bit 7 enables the L2 cache, bit 6 selects the write policy,
// bits 5-4 the cache speed, bit 3 the number of banks and bits 2-0 the cache
// size. The size bits read back as a fixed 512KB regardless of what is
// written.
//
// DRAMControl: DRAM read/write wait states, resource lock, graphics adapter
// bus and L1 policy bits.
//
// ShadowRead: bit 0 globally enables shadowing of the C and D segments, bits
// 7-1 enable reads from DRAM for the individual 16KB/32KB windows (bit 1 for
// C0000-C7FFF, bits 2-7 upwards from C8000).
//
// ShadowWrite: bit 7 enables reads from DRAM for E0000-FFFFF, bit 6 write
// protects every shadowed window.
//
// SMRAMControl: bit 0 opens SMRAM to accesses from outside system-management
// mode, bit 5 diverts data cycles to PCI while code cycles stay in DRAM.
const (
	Command      uint8 = 0x04
	Status       uint8 = 0x07
	CacheControl uint8 = 0x50
	DRAMControl  uint8 = 0x51
	PCIPostWrite uint8 = 0x52
	ShadowRead   uint8 = 0x54
	ShadowWrite  uint8 = 0x55
	DRAMBank0    uint8 = 0x56
	DRAMBank1    uint8 = 0x58
	SMRAMControl uint8 = 0x60
)

// RegisterNames maps the documented configuration registers to their names.
// Used for log lines and by the monitor.
var RegisterNames = map[uint8]string{
	Command:      "COMMAND",
	Status:       "STATUS",
	CacheControl: "CACHE",
	DRAMControl:  "DRAM",
	PCIPostWrite: "PCIPOST",
	ShadowRead:   "SHADOWR",
	ShadowWrite:  "SHADOWW",
	DRAMBank0:    "BANK0",
	DRAMBank1:    "BANK1",
	SMRAMControl: "SMRAM",
}

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

// Package hb4 emulates the UMC HB4 "Super Energy Star Green" northbridge
// (the UM8881F of the 8881/8886 chipset pair). The chip sits between CPU,
// DRAM and the PCI bus and is configured through its PCI configuration
// space: L2 cache control, DRAM timing, shadow RAM permissions for the
// C0000-FFFFF area and SMRAM visibility.
//
// No datasheet for this chip is known to exist. Register behaviour has been
// reconstructed from the BIOSes of boards that use it and should be treated
// as approximate. Undocumented registers accept writes without effect, which
// matches how tolerant the real chip is of firmware poking at it.
//
// Only the logical configuration state is emulated. The chipset pushes the
// memory-routing consequences of register writes to the memory and SMRAM
// subsystems; it performs no storage, arbitration or timing of its own.
package hb4

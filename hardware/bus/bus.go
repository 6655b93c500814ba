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

// Package bus defines the interfaces a chipset uses to reach the rest of the
// machine. Chip implementations hold these interfaces rather than concrete
// machine types, meaning the collaborators can be substituted in tests.
package bus

import (
	"github.com/jetsetilly/gopherpc/hardware/memory/memorymap"
)

// Memory is the interface to the address-decode and permission-enforcement
// engine of the memory subsystem.
type Memory interface {
	// SetRegionPermissions assigns the read and write routing for the
	// address window [base, base+length).
	SetRegionPermissions(base uint32, length uint32, read memorymap.Access, write memorymap.Access)

	// FlushTranslationCache invalidates any cached address translations.
	// Must be called after routing changes so the changes are visible to the
	// very next memory access.
	FlushTranslationCache()
}

// CPU is the interface to the CPU's cache and timing state.
type CPU interface {
	// SetCacheExternal sets whether the external (L2) cache is enabled.
	SetCacheExternal(enabled bool)

	// UpdateWaitStates recalculates bus wait states. Called after any change
	// to cache-enable state.
	UpdateWaitStates()
}

// SMRAMHandle is a reference to an SMRAM mapping acquired from the SMRAM
// subsystem.
type SMRAMHandle int

// AliasRouting describes how code and data cycles inside an SMRAM region are
// split between backing stores.
type AliasRouting uint8

// AliasDivertData routes data cycles to the external bus while code cycles
// continue to DRAM.
const AliasDivertData AliasRouting = 0x02

// SMRAM is the interface to the system-management RAM subsystem.
type SMRAM interface {
	// AcquireHandle allocates a new SMRAM mapping for the caller. Mappings
	// are adjusted with Enable() and remain allocated for the lifetime of
	// the machine.
	AcquireHandle() SMRAMHandle

	// DisableAll disables every SMRAM mapping and alias routing.
	DisableAll()

	// Enable maps guest addresses [guestBase, guestBase+length) onto host
	// addresses starting at hostBase. The mapping is visible inside
	// system-management mode if visibleInSMM is true and outside of it if
	// visibleOutsideSMM is true.
	Enable(handle SMRAMHandle, guestBase uint32, hostBase uint32, length uint32,
		visibleOutsideSMM bool, visibleInSMM bool)

	// SetAliasRouting splits code/data cycles for the region
	// [guestBase, guestBase+length). Two independent alias slots exist.
	SetAliasRouting(alias int, guestBase uint32, length uint32, mode AliasRouting)
}

// Ports is the interface through which a chipset instantiates auxiliary port
// devices during its own bring-up.
type Ports interface {
	// RegisterFastResetPort attaches the fast-reset/A20 port device.
	RegisterFastResetPort()
}

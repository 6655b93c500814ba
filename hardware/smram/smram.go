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

// Package smram tracks the logical state of system-management RAM: which
// mappings are enabled, where they are visible and how code/data cycles are
// split. The chipset drives this state through the bus.SMRAM interface. The
// hardware aliasing itself (the actual routing of cycles to backing store)
// is not modelled.
package smram

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpc/hardware/bus"
	"github.com/jetsetilly/gopherpc/logger"
)

// NumAliases is the number of independent alias routing slots.
const NumAliases = 2

// Mapping records the state of one enabled SMRAM mapping.
type Mapping struct {
	GuestBase uint32
	HostBase  uint32
	Length    uint32

	// the mapping is always reachable from inside system-management mode
	// when VisibleInSMM is set. VisibleOutsideSMM additionally opens it to
	// normal mode accesses.
	VisibleOutsideSMM bool
	VisibleInSMM      bool
}

// Alias records the routing split applied to one alias slot.
type Alias struct {
	GuestBase uint32
	Length    uint32
	Mode      bus.AliasRouting
}

// SMRAM is the system-management RAM subsystem. It implements bus.SMRAM.
type SMRAM struct {
	handles  int
	mappings map[bus.SMRAMHandle]Mapping
	aliases  [NumAliases]*Alias
}

// NewSMRAM is the preferred method of initialisation for the SMRAM type.
func NewSMRAM() *SMRAM {
	return &SMRAM{
		mappings: make(map[bus.SMRAMHandle]Mapping),
	}
}

// AcquireHandle implements the bus.SMRAM interface.
func (sm *SMRAM) AcquireHandle() bus.SMRAMHandle {
	h := bus.SMRAMHandle(sm.handles)
	sm.handles++
	return h
}

// DisableAll implements the bus.SMRAM interface.
func (sm *SMRAM) DisableAll() {
	for h := range sm.mappings {
		delete(sm.mappings, h)
	}
	for i := range sm.aliases {
		sm.aliases[i] = nil
	}
}

// Enable implements the bus.SMRAM interface.
func (sm *SMRAM) Enable(handle bus.SMRAMHandle, guestBase uint32, hostBase uint32, length uint32,
	visibleOutsideSMM bool, visibleInSMM bool) {

	sm.mappings[handle] = Mapping{
		GuestBase:         guestBase,
		HostBase:          hostBase,
		Length:            length,
		VisibleOutsideSMM: visibleOutsideSMM,
		VisibleInSMM:      visibleInSMM,
	}

	logger.Logf("smram", "enable %08x -> %08x (%x bytes) outside=%v", guestBase, hostBase, length, visibleOutsideSMM)
}

// SetAliasRouting implements the bus.SMRAM interface.
func (sm *SMRAM) SetAliasRouting(alias int, guestBase uint32, length uint32, mode bus.AliasRouting) {
	if alias < 0 || alias >= NumAliases {
		return
	}
	sm.aliases[alias] = &Alias{
		GuestBase: guestBase,
		Length:    length,
		Mode:      mode,
	}
}

// Mapping returns the state of the mapping acquired with the handle. Returns
// false if the mapping is not currently enabled.
func (sm *SMRAM) Mapping(handle bus.SMRAMHandle) (Mapping, bool) {
	m, ok := sm.mappings[handle]
	return m, ok
}

// Alias returns the state of the numbered alias slot. Returns false if no
// routing has been applied to the slot.
func (sm *SMRAM) Alias(alias int) (Alias, bool) {
	if alias < 0 || alias >= NumAliases || sm.aliases[alias] == nil {
		return Alias{}, false
	}
	return *sm.aliases[alias], true
}

func (sm *SMRAM) String() string {
	s := strings.Builder{}
	if len(sm.mappings) == 0 {
		s.WriteString("smram disabled\n")
	}
	for h, m := range sm.mappings {
		s.WriteString(fmt.Sprintf("mapping %d: %08x (%x bytes) in-smm=%v outside-smm=%v\n",
			int(h), m.GuestBase, m.Length, m.VisibleInSMM, m.VisibleOutsideSMM))
	}
	for i, a := range sm.aliases {
		if a != nil {
			s.WriteString(fmt.Sprintf("alias %d: %08x (%x bytes) mode=%#02x\n",
				i, a.GuestBase, a.Length, uint8(a.Mode)))
		}
	}
	return s.String()
}

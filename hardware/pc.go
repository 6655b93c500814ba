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

package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpc/curated"
	"github.com/jetsetilly/gopherpc/hardware/chipset/hb4"
	"github.com/jetsetilly/gopherpc/hardware/memory"
	"github.com/jetsetilly/gopherpc/hardware/pci"
	"github.com/jetsetilly/gopherpc/hardware/port92"
	"github.com/jetsetilly/gopherpc/hardware/smram"
	"github.com/jetsetilly/gopherpc/logger"
)

// PC is a machine built around the UMC HB4 chipset.
//
// The PC itself stands in for the CPU's cache and timing state and for the
// port registry, implementing the bus.CPU and bus.Ports interfaces.
type PC struct {
	PCI     *pci.Bus
	Mem     *memory.Memory
	SMRAM   *smram.SMRAM
	Chipset *hb4.HB4
	Port92  *port92.Port92

	// logical CPU state pushed in by the chipset
	cacheExternal  bool
	waitStateCalcs int

	fastResets int
}

// NewPC is the preferred method of initialisation for the PC type. Any
// failure during assembly is fatal to construction; no partial machine is
// returned.
func NewPC() (*PC, error) {
	pc := &PC{
		PCI:   pci.NewBus(),
		Mem:   memory.NewMemory(),
		SMRAM: smram.NewSMRAM(),
	}

	var err error
	pc.Chipset, err = hb4.NewHB4(pc.PCI, pc.Mem, pc, pc.SMRAM, pc)
	if err != nil {
		return nil, curated.Errorf("pc: %v", err)
	}

	return pc, nil
}

// Reset the machine to power-on state.
func (pc *PC) Reset() {
	pc.Chipset.Reset()
}

// SetCacheExternal implements the bus.CPU interface.
func (pc *PC) SetCacheExternal(enabled bool) {
	pc.cacheExternal = enabled
}

// UpdateWaitStates implements the bus.CPU interface. Timing is not modelled
// so the recalculation only notes that it happened.
func (pc *PC) UpdateWaitStates() {
	pc.waitStateCalcs++
}

// CacheExternal returns whether the L2 cache is currently enabled.
func (pc *PC) CacheExternal() bool {
	return pc.cacheExternal
}

// RegisterFastResetPort implements the bus.Ports interface.
func (pc *PC) RegisterFastResetPort() {
	pc.Port92 = port92.NewPort92(func() {
		pc.fastResets++
		logger.Log("pc", "fast reset")
	})
}

// FastResets returns the number of fast resets requested through the system
// control port.
func (pc *PC) FastResets() int {
	return pc.fastResets
}

func (pc *PC) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("chipset: %s\n", pc.Chipset))
	s.WriteString(fmt.Sprintf("l2 cache: %v (waitstate recalcs %d)\n", pc.cacheExternal, pc.waitStateCalcs))
	s.WriteString(pc.Port92.String())
	s.WriteString("\n")
	return s.String()
}

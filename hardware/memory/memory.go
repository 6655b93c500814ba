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

// Package memory tracks the logical routing state of the memory address
// space. The chipset pushes window permissions into it through the
// bus.Memory interface. Actual storage and address decoding are not
// modelled, only the routing assignments firmware observes.
package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherpc/hardware/memory/memorymap"
)

// Window records the most recently applied routing for an address window.
type Window struct {
	Base   uint32
	Length uint32
	Read   memorymap.Access
	Write  memorymap.Access
}

// Memory is the memory subsystem. It implements bus.Memory.
type Memory struct {
	windows map[uint32]Window

	// incremented on every translation cache flush
	flushGeneration int
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		windows: make(map[uint32]Window),
	}
}

// SetRegionPermissions implements the bus.Memory interface. Windows are
// keyed by base address; a new assignment for a base replaces the previous
// one.
func (mem *Memory) SetRegionPermissions(base uint32, length uint32, read memorymap.Access, write memorymap.Access) {
	mem.windows[base] = Window{
		Base:   base,
		Length: length,
		Read:   read,
		Write:  write,
	}
}

// FlushTranslationCache implements the bus.Memory interface.
func (mem *Memory) FlushTranslationCache() {
	mem.flushGeneration++
}

// Window returns the routing currently applied to the window with the base
// address. Returns false if no routing has ever been applied to it.
func (mem *Memory) Window(base uint32) (Window, bool) {
	w, ok := mem.windows[base]
	return w, ok
}

// FlushGeneration returns the number of translation cache flushes requested
// so far.
func (mem *Memory) FlushGeneration() int {
	return mem.flushGeneration
}

func (mem *Memory) String() string {
	bases := make([]uint32, 0, len(mem.windows))
	for b := range mem.windows {
		bases = append(bases, b)
	}
	sort.Slice(bases, func(i, j int) bool { return bases[i] < bases[j] })

	s := strings.Builder{}
	for _, b := range bases {
		w := mem.windows[b]
		s.WriteString(fmt.Sprintf("%08x-%08x: read %s, write %s\n",
			w.Base, w.Base+w.Length-1, w.Read, w.Write))
	}
	return s.String()
}

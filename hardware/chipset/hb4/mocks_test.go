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

package hb4_test

import (
	"testing"

	"github.com/jetsetilly/gopherpc/hardware/bus"
	"github.com/jetsetilly/gopherpc/hardware/chipset/hb4"
	"github.com/jetsetilly/gopherpc/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpc/hardware/pci"
	"github.com/jetsetilly/gopherpc/test"
)

// mock collaborators record the calls the chipset makes, so tests can check
// both the final routing state and the exact call sequence.

type permCall struct {
	base   uint32
	length uint32
	read   memorymap.Access
	write  memorymap.Access
}

type mockMemory struct {
	calls   []permCall
	windows map[uint32]permCall
	flushes int
}

func newMockMemory() *mockMemory {
	return &mockMemory{
		windows: make(map[uint32]permCall),
	}
}

func (m *mockMemory) SetRegionPermissions(base uint32, length uint32, read memorymap.Access, write memorymap.Access) {
	c := permCall{base: base, length: length, read: read, write: write}
	m.calls = append(m.calls, c)
	m.windows[base] = c
}

func (m *mockMemory) FlushTranslationCache() {
	m.flushes++
}

func (m *mockMemory) reset() {
	m.calls = m.calls[:0]
	m.flushes = 0
}

type mockCPU struct {
	cacheExternal  bool
	waitStateCalcs int
}

func (c *mockCPU) SetCacheExternal(enabled bool) {
	c.cacheExternal = enabled
}

func (c *mockCPU) UpdateWaitStates() {
	c.waitStateCalcs++
}

type enableCall struct {
	handle            bus.SMRAMHandle
	guestBase         uint32
	hostBase          uint32
	length            uint32
	visibleOutsideSMM bool
	visibleInSMM      bool
}

type aliasCall struct {
	alias  int
	base   uint32
	length uint32
	mode   bus.AliasRouting
}

type mockSMRAM struct {
	handles  int
	disables int
	enables  []enableCall
	aliases  []aliasCall
}

func (sm *mockSMRAM) AcquireHandle() bus.SMRAMHandle {
	h := bus.SMRAMHandle(sm.handles)
	sm.handles++
	return h
}

func (sm *mockSMRAM) DisableAll() {
	sm.disables++
}

func (sm *mockSMRAM) Enable(handle bus.SMRAMHandle, guestBase uint32, hostBase uint32, length uint32,
	visibleOutsideSMM bool, visibleInSMM bool) {
	sm.enables = append(sm.enables, enableCall{
		handle:            handle,
		guestBase:         guestBase,
		hostBase:          hostBase,
		length:            length,
		visibleOutsideSMM: visibleOutsideSMM,
		visibleInSMM:      visibleInSMM,
	})
}

func (sm *mockSMRAM) SetAliasRouting(alias int, guestBase uint32, length uint32, mode bus.AliasRouting) {
	sm.aliases = append(sm.aliases, aliasCall{
		alias:  alias,
		base:   guestBase,
		length: length,
		mode:   mode,
	})
}

func (sm *mockSMRAM) reset() {
	sm.disables = 0
	sm.enables = sm.enables[:0]
	sm.aliases = sm.aliases[:0]
}

type mockPorts struct {
	fastResetPorts int
}

func (p *mockPorts) RegisterFastResetPort() {
	p.fastResetPorts++
}

type testFixture struct {
	dev *hb4.HB4
	bus *pci.Bus
	mem *mockMemory
	cpu *mockCPU
	sm  *mockSMRAM
	aux *mockPorts
}

func newTestHB4(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		bus: pci.NewBus(),
		mem: newMockMemory(),
		cpu: &mockCPU{},
		sm:  &mockSMRAM{},
		aux: &mockPorts{},
	}

	var err error
	f.dev, err = hb4.NewHB4(f.bus, f.mem, f.cpu, f.sm, f.aux)
	test.ExpectedSuccess(t, err)

	return f
}

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

package smram_test

import (
	"testing"

	"github.com/jetsetilly/gopherpc/hardware/bus"
	"github.com/jetsetilly/gopherpc/hardware/smram"
	"github.com/jetsetilly/gopherpc/test"
)

func TestMappingLifetime(t *testing.T) {
	sm := smram.NewSMRAM()

	h := sm.AcquireHandle()

	_, ok := sm.Mapping(h)
	test.ExpectedFailure(t, ok)

	sm.Enable(h, 0x000a0000, 0x000a0000, 0x20000, false, true)

	m, ok := sm.Mapping(h)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, m.GuestBase, 0x000a0000)
	test.Equate(t, m.Length, 0x20000)
	test.Equate(t, m.VisibleInSMM, true)
	test.Equate(t, m.VisibleOutsideSMM, false)

	sm.DisableAll()
	_, ok = sm.Mapping(h)
	test.ExpectedFailure(t, ok)
}

func TestAliasRouting(t *testing.T) {
	sm := smram.NewSMRAM()

	_, ok := sm.Alias(1)
	test.ExpectedFailure(t, ok)

	sm.SetAliasRouting(1, 0x000a0000, 0x20000, bus.AliasDivertData)

	a, ok := sm.Alias(1)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, uint8(a.Mode), uint8(bus.AliasDivertData))

	// out of range slots are ignored
	sm.SetAliasRouting(smram.NumAliases, 0x000a0000, 0x20000, bus.AliasDivertData)

	sm.DisableAll()
	_, ok = sm.Alias(1)
	test.ExpectedFailure(t, ok)
}

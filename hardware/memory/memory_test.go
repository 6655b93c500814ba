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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherpc/hardware/memory"
	"github.com/jetsetilly/gopherpc/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpc/test"
)

func TestWindowTracking(t *testing.T) {
	mem := memory.NewMemory()

	_, ok := mem.Window(0x000c0000)
	test.ExpectedFailure(t, ok)

	mem.SetRegionPermissions(0x000c0000, 0x8000, memorymap.Internal, memorymap.ExternalAny)

	w, ok := mem.Window(0x000c0000)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, w.Length, 0x8000)
	test.Equate(t, w.Read.String(), "internal")
	test.Equate(t, w.Write.String(), "external")

	// a new assignment for the same base replaces the previous one
	mem.SetRegionPermissions(0x000c0000, 0x8000, memorymap.ExternalAny, memorymap.ExternalAny)
	w, _ = mem.Window(0x000c0000)
	test.Equate(t, w.Read.String(), "external")
}

func TestFlushGeneration(t *testing.T) {
	mem := memory.NewMemory()

	test.Equate(t, mem.FlushGeneration(), 0)
	mem.FlushTranslationCache()
	mem.FlushTranslationCache()
	test.Equate(t, mem.FlushGeneration(), 2)
}

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

package port92_test

import (
	"testing"

	"github.com/jetsetilly/gopherpc/hardware/port92"
	"github.com/jetsetilly/gopherpc/test"
)

func TestFastReset(t *testing.T) {
	resets := 0
	p := port92.NewPort92(func() { resets++ })

	p.Write(0x01)
	test.Equate(t, resets, 1)

	// holding the bit high does not retrigger
	p.Write(0x01)
	test.Equate(t, resets, 1)

	p.Write(0x00)
	p.Write(0x01)
	test.Equate(t, resets, 2)

	// the reset bit reads back as zero
	test.Equate(t, p.Read(), 0x00)
}

func TestA20Gate(t *testing.T) {
	p := port92.NewPort92(nil)

	test.ExpectedFailure(t, p.A20Enabled())
	p.Write(0x02)
	test.ExpectedSuccess(t, p.A20Enabled())
	test.Equate(t, p.Read(), 0x02)
}

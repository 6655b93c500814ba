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

package monitor

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherpc/curated"
	"github.com/jetsetilly/gopherpc/hardware/chipset/hb4"
	"github.com/jetsetilly/gopherpc/hardware/pci"
	"github.com/jetsetilly/gopherpc/logger"
)

const vizFile = "gopherpc.dot"

const helpText = `PEEK <reg>...     read configuration registers
POKE <reg> <val>  write a configuration register
REGS              dump the configuration space
SHADOW            current shadow window routing
SMRAM             current SMRAM state
PC                machine summary
LOG               show the log
VIZ [file]        write machine state graph (graphviz dot)
RESET             reset the machine
QUIT              leave the monitor
`

// parseCommand runs a single monitor command. The returned bool indicates
// that the session should end.
func (m *Monitor) parseCommand(input string) (bool, error) {
	toks := fields(input)
	if len(toks) == 0 {
		return false, nil
	}

	switch strings.ToUpper(toks[0]) {
	default:
		return false, curated.Errorf("unrecognised command (%s)", toks[0])

	case "HELP":
		m.printf("%s", helpText)

	case "PEEK":
		if len(toks) < 2 {
			return false, curated.Errorf("not enough arguments for %s", toks[0])
		}
		for _, a := range toks[1:] {
			reg, err := parseRegister(a)
			if err != nil {
				return false, err
			}
			v := m.pc.PCI.ReadConfig(pci.NorthbridgeSlot, 0, reg)
			if name, ok := hb4.RegisterNames[reg]; ok {
				m.printf("%02x (%s) = %02x\n", reg, name, v)
			} else {
				m.printf("%02x = %02x\n", reg, v)
			}
		}

	case "POKE":
		if len(toks) != 3 {
			return false, curated.Errorf("wrong number of arguments for %s", toks[0])
		}
		reg, err := parseRegister(toks[1])
		if err != nil {
			return false, err
		}
		val, err := strconv.ParseUint(toks[2], 0, 8)
		if err != nil {
			return false, curated.Errorf("not a byte value (%s)", toks[2])
		}
		m.pc.PCI.WriteConfig(pci.NorthbridgeSlot, 0, reg, uint8(val))

	case "REGS":
		for base := uint8(0); base < hb4.ConfigSpaceSize; base += 16 {
			m.printf("%02x:", base)
			for o := base; o < base+16; o++ {
				m.printf(" %02x", m.pc.PCI.ReadConfig(pci.NorthbridgeSlot, 0, o))
			}
			m.printf("\n")
		}

	case "SHADOW":
		m.printf("%s", m.pc.Mem.String())

	case "SMRAM":
		m.printf("%s", m.pc.SMRAM.String())

	case "PC":
		m.printf("%s", m.pc.String())

	case "LOG":
		b := &bytes.Buffer{}
		logger.Tail(b, -1)
		m.printf("%s", b.String())

	case "VIZ":
		fn := vizFile
		if len(toks) > 1 {
			fn = toks[1]
		}
		b := &bytes.Buffer{}
		memviz.Map(b, m.pc)
		if err := os.WriteFile(fn, b.Bytes(), 0644); err != nil {
			return false, curated.Errorf("viz: %v", err)
		}
		m.printf("machine state graph written to %s\n", fn)

	case "RESET":
		m.pc.Reset()

	case "QUIT", "Q":
		return true, nil
	}

	return false, nil
}

func parseRegister(s string) (uint8, error) {
	// register arguments can be given by name or by offset
	for reg, name := range hb4.RegisterNames {
		if strings.EqualFold(s, name) {
			return reg, nil
		}
	}

	// offsets are hexadecimal unless prefixed otherwise
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0b") {
		s = "0x" + s
	}

	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil || v >= hb4.ConfigSpaceSize {
		return 0, curated.Errorf("not a configuration register (%s)", s)
	}

	return uint8(v), nil
}

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

package hb4

import (
	"fmt"

	"github.com/jetsetilly/gopherpc/curated"
	"github.com/jetsetilly/gopherpc/hardware/bus"
	"github.com/jetsetilly/gopherpc/hardware/pci"
	"github.com/jetsetilly/gopherpc/logger"
)

// ConfigSpaceSize is the number of byte registers in the chip's
// configuration space.
const ConfigSpaceSize = 128

// HB4 is the UM8881F northbridge.
type HB4 struct {
	mem bus.Memory
	cpu bus.CPU
	sm  bus.SMRAM

	// the SMRAM mapping owned by this chip
	smram bus.SMRAMHandle

	// the configuration space. the only stored state of the chip; shadow
	// and SMRAM routing are derived from it on every triggering write
	conf []uint8
}

// how a write to a configuration register is committed. registers without an
// entry in the policies table drop the written value.
type policy int

const (
	policyNone   policy = iota // write is dropped
	policyStore                // store verbatim
	policyClear                // write-one-to-clear for bits 0 and 3-7
	policyCache                // store with hardcoded cache size, update CPU cache state
	policyShadow               // store verbatim, recompute shadow routing
	policySMRAM                // store verbatim, recompute SMRAM state
)

var policies = [ConfigSpaceSize]policy{
	Command: policyStore, 0x05: policyStore,
	Status:       policyClear,
	0x0c:         policyStore,
	0x0d:         policyStore,
	CacheControl: policyCache,
	DRAMControl:  policyStore,
	PCIPostWrite: policyStore,
	0x53:         policyStore,
	ShadowRead:   policyShadow,
	ShadowWrite:  policyShadow,
	DRAMBank0:    policyStore, 0x57: policyStore,
	DRAMBank1: policyStore, 0x59: policyStore,
	0x5a: policyStore, 0x5b: policyStore,
	0x5c: policyStore, 0x5d: policyStore,
	0x5e: policyStore, 0x5f: policyStore,
	SMRAMControl: policySMRAM,
	0x61:         policyStore,
}

// NewHB4 is the preferred method of initialisation for the HB4 type. The
// chip registers itself with the PCI bus, instantiates the system control
// port and acquires its SMRAM mapping, before resetting to power-on state.
func NewHB4(pcibus *pci.Bus, mem bus.Memory, cpu bus.CPU, sm bus.SMRAM, aux bus.Ports) (*HB4, error) {
	dev := &HB4{
		mem:  mem,
		cpu:  cpu,
		sm:   sm,
		conf: make([]uint8, ConfigSpaceSize),
	}

	err := pcibus.RegisterDevice(pci.NorthbridgeSlot, dev.Read, dev.Write, "UMC HB4 (8881F)")
	if err != nil {
		return nil, curated.Errorf("hb4: %v", err)
	}

	aux.RegisterFastResetPort()
	dev.smram = sm.AcquireHandle()

	dev.Reset()

	return dev, nil
}

// Read a byte from the configuration space. Values are returned as stored,
// with no masking. The function argument is accepted but ignored, the chip
// exposes a single function.
func (dev *HB4) Read(_ int, offset uint8) uint8 {
	return dev.conf[offset&(ConfigSpaceSize-1)]
}

// Write a byte to the configuration space, applying the commit policy for
// the register and any routing recomputation it triggers. Recomputation
// completes before the function returns; there is no deferred work.
//
// Writes to registers with no defined policy are dropped. The chip never
// signals an error.
func (dev *HB4) Write(_ int, offset uint8, value uint8) {
	offset &= ConfigSpaceSize - 1

	logger.Logf("hb4", "%02x = %02x", offset, value)

	switch policies[offset] {
	case policyNone:
		// undefined register. the real chip tolerates these writes

	case policyStore:
		dev.conf[offset] = value

	case policyClear:
		dev.conf[offset] &= ^(value & 0xf9)

	case policyCache:
		// cache size bits are hardcoded to 512KB
		dev.conf[offset] = (value & 0xf8) | 0x04
		dev.cpu.SetCacheExternal(value&0x80 == 0x80)
		dev.cpu.UpdateWaitStates()

	case policyShadow:
		dev.conf[offset] = value
		dev.shadow()

	case policySMRAM:
		dev.conf[offset] = value
		dev.updateSMRAM()
	}
}

// Reset the chip to power-on state: PCI identity, default cache and DRAM
// timing values, shadow routing for the current (zeroed) shadow registers
// and the default SMRAM split-routing configuration. The SMRAM default is
// established with a normal Write() so that its side effect fires.
func (dev *HB4) Reset() {
	dev.conf[0x00] = uint8(VendorID & 0xff)
	dev.conf[0x01] = uint8(VendorID >> 8)
	dev.conf[0x02] = uint8(DeviceID & 0xff)
	dev.conf[0x03] = uint8(DeviceID >> 8)

	dev.conf[0x07] = 0x02
	dev.conf[0x08] = 0x04
	dev.conf[0x09] = 0x00
	dev.conf[0x0a] = 0x00
	dev.conf[0x0b] = 0x06

	dev.conf[0x51] = 0x01
	dev.conf[0x52] = 0x01
	dev.conf[0x5a] = 0x04
	dev.conf[0x5c] = 0xc0
	dev.conf[0x5d] = 0x20
	dev.conf[0x5f] = 0xff

	dev.shadow()
	dev.Write(0, SMRAMControl, 0x20)
}

// Close releases the configuration space. The chip must not be used after
// closing.
func (dev *HB4) Close() {
	dev.conf = nil
}

// Snapshot returns a copy of the configuration space.
func (dev *HB4) Snapshot() []uint8 {
	conf := make([]uint8, len(dev.conf))
	copy(conf, dev.conf)
	return conf
}

// Plumb a previously snapshotted configuration space back into the chip and
// reattach the collaborators. Derived routing state is recomputed so the
// collaborators agree with the restored registers.
func (dev *HB4) Plumb(conf []uint8, mem bus.Memory, cpu bus.CPU, sm bus.SMRAM) {
	dev.conf = make([]uint8, ConfigSpaceSize)
	copy(dev.conf, conf)
	dev.mem = mem
	dev.cpu = cpu
	dev.sm = sm
	dev.shadow()
	dev.updateSMRAM()
}

func (dev *HB4) String() string {
	return fmt.Sprintf("cache=%02x dram=%02x shadow=%02x/%02x smram=%02x",
		dev.conf[CacheControl], dev.conf[DRAMControl],
		dev.conf[ShadowRead], dev.conf[ShadowWrite],
		dev.conf[SMRAMControl],
	)
}

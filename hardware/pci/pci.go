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

// Package pci implements the configuration side of the PCI bus: a registry
// of devices keyed by slot, dispatching configuration space reads and writes
// to the registered device. Bus arbitration and memory/IO transactions are
// not modelled.
package pci

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherpc/curated"
	"github.com/jetsetilly/gopherpc/logger"
)

// NumSlots is the number of device slots on the bus.
const NumSlots = 32

// NorthbridgeSlot is the slot the host bridge occupies.
const NorthbridgeSlot = 10

// ConfigSpaceSize is the number of byte registers in a device's
// configuration space.
const ConfigSpaceSize = 128

// ReadFunc is how the bus reads a byte from a device's configuration space.
// The function argument selects a function of a multi-function device.
type ReadFunc func(function int, offset uint8) uint8

// WriteFunc is how the bus writes a byte to a device's configuration space.
type WriteFunc func(function int, offset uint8, value uint8)

// sentinel error returned by RegisterDevice.
const SlotOccupied = "pci: slot %d already occupied (%s)"

type device struct {
	label string
	read  ReadFunc
	write WriteFunc
}

// Bus is the registry of PCI devices, keyed by slot.
type Bus struct {
	devices [NumSlots]*device
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{}
}

// RegisterDevice attaches a device's configuration space handlers to a slot.
// Any device context is expected to be carried by the handlers themselves
// (for example, by using bound methods). Registering to an occupied slot is
// an error.
func (b *Bus) RegisterDevice(slot int, read ReadFunc, write WriteFunc, label string) error {
	if slot < 0 || slot >= NumSlots {
		return curated.Errorf("pci: no such slot (%d)", slot)
	}
	if b.devices[slot] != nil {
		return curated.Errorf(SlotOccupied, slot, b.devices[slot].label)
	}

	b.devices[slot] = &device{
		label: label,
		read:  read,
		write: write,
	}

	logger.Logf("pci", "%s registered in slot %d", label, slot)

	return nil
}

// ReadConfig reads a byte from the configuration space of the device in the
// slot. An empty slot reads all-ones, as on a real bus where no device
// claims the transaction.
func (b *Bus) ReadConfig(slot int, function int, offset uint8) uint8 {
	if slot < 0 || slot >= NumSlots || b.devices[slot] == nil {
		return 0xff
	}
	return b.devices[slot].read(function, offset&(ConfigSpaceSize-1))
}

// WriteConfig writes a byte to the configuration space of the device in the
// slot. Writes to an empty slot are dropped.
func (b *Bus) WriteConfig(slot int, function int, offset uint8, value uint8) {
	if slot < 0 || slot >= NumSlots || b.devices[slot] == nil {
		return
	}
	b.devices[slot].write(function, offset&(ConfigSpaceSize-1), value)
}

// Label returns the label of the device in the slot. The empty string means
// the slot is unoccupied.
func (b *Bus) Label(slot int) string {
	if slot < 0 || slot >= NumSlots || b.devices[slot] == nil {
		return ""
	}
	return b.devices[slot].label
}

func (b *Bus) String() string {
	s := strings.Builder{}
	for i, d := range b.devices {
		if d != nil {
			s.WriteString(fmt.Sprintf("slot %02d: %s\n", i, d.label))
		}
	}
	return s.String()
}

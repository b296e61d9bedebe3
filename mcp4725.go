// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp4725

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DefaultAddress is the I²C address (0x60) of an MCP4725 with all three user
// address bits low.
const DefaultAddress i2c.Addr = 0x60

var errInvalidVoltage = errors.New("mcp4725: voltage out of range")

// PDMode selects the state of the output when the channel is powered down.
type PDMode byte

const (
	PDModeNormal PDMode = iota
	// The remaining values specify the resistance used to tie the output pin
	// to ground.
	PDMode1K
	PDMode100K
	PDMode500K
)

// String returns the name of the power-down mode.
func (p PDMode) String() string {
	switch p & PDMode(pdMask) {
	case PDMode1K:
		return "1kOhm"
	case PDMode100K:
		return "100kOhm"
	case PDMode500K:
		return "500kOhm"
	default:
		return "Normal"
	}
}

// Address resolves the 7-bit bus address of a chip from its three user
// address bits (A2 and A1 are factory programmed, A0 is pin strapped). Bits
// above the low three are silently masked.
func Address(userAddress byte) i2c.Addr {
	return i2c.Addr(encodeAddress(userAddress))
}

// Dev represents an MCP4725 D/A converter on an I²C bus.
type Dev struct {
	d    i2c.Dev
	gc   i2c.Dev // broadcast endpoint for the general-call commands
	vRef physic.ElectricPotential
}

// New creates and returns a representation of an MCP4725 D/A converter.
// userAddress holds the chip's three address bits; wider values are masked.
//
// vRef is the supply voltage the chip uses as its reference. It is consulted
// only by the voltage based methods; the raw count methods never use it, so
// zero is acceptable when only counts are written.
func New(bus i2c.Bus, userAddress byte, vRef physic.ElectricPotential) (*Dev, error) {
	d := &Dev{
		d:    i2c.Dev{Bus: bus, Addr: uint16(Address(userAddress))},
		gc:   i2c.Dev{Bus: bus, Addr: generalCallAddr},
		vRef: vRef,
	}
	return d, nil
}

// SetDAC writes the power-down mode and count to the DAC register. The
// output changes as soon as the transaction completes; nothing is persisted.
// Counts above 4095 saturate at 4095.
func (d *Dev) SetDAC(pd PDMode, count uint16) error {
	w := encodeWrite(cmdWriteDAC, pd, count)
	if err := d.d.Tx(w[:], nil); err != nil {
		return fmt.Errorf("mcp4725: %w", err)
	}
	return nil
}

// SetDACAndEEPROM writes the power-down mode and count to the DAC register
// and schedules both to be programmed into EEPROM, from which the chip
// reloads them on power up. The EEPROM write continues inside the chip after
// this call returns; poll ReadStatus until EEPROMWriteComplete reports true.
func (d *Dev) SetDACAndEEPROM(pd PDMode, count uint16) error {
	w := encodeWrite(cmdWriteDACAndEEPROM, pd, count)
	if err := d.d.Tx(w[:], nil); err != nil {
		return fmt.Errorf("mcp4725: %w", err)
	}
	return nil
}

// FastWrite updates the DAC register with the two byte fast write command.
// Fast writes cannot touch the EEPROM.
func (d *Dev) FastWrite(pd PDMode, count uint16) error {
	w := encodeFast(pd, count)
	if err := d.d.Tx(w[:], nil); err != nil {
		return fmt.Errorf("mcp4725: %w", err)
	}
	return nil
}

// ReadStatus reads back the DAC register, the EEPROM contents and the device
// flags in a single five byte transaction.
func (d *Dev) ReadStatus() (Status, error) {
	var r [5]byte
	if err := d.d.Tx(nil, r[:]); err != nil {
		return Status{}, fmt.Errorf("mcp4725: %w", err)
	}
	return decodeStatus(r), nil
}

// WakeUp issues the I²C general-call wake-up command. It goes to the
// broadcast address 0x00, not to this chip alone: every device on the bus
// that implements the general call resets its power-down bits.
func (d *Dev) WakeUp() error {
	if err := d.gc.Tx([]byte{wakeUpCode}, nil); err != nil {
		return fmt.Errorf("mcp4725: %w", err)
	}
	return nil
}

// Reset issues the I²C general-call reset command, with the same broadcast
// caveat as WakeUp. The chip restarts and reloads the DAC register from
// EEPROM.
func (d *Dev) Reset() error {
	if err := d.gc.Tx([]byte{resetCode}, nil); err != nil {
		return fmt.Errorf("mcp4725: %w", err)
	}
	return nil
}

// PotentialToCount converts the specified voltage to the count for the D/A
// converter, scaled against the reference voltage supplied to New. The count
// will roughly be v/(vRef/4095). Voltages outside 0-vRef return an error.
func (d *Dev) PotentialToCount(v physic.ElectricPotential) (uint16, error) {
	if d.vRef <= 0 || v < 0 || v > d.vRef {
		return 0, errInvalidVoltage
	}
	stepValue := d.vRef / maxCount
	return uint16(float64(v)/float64(stepValue) + 0.5), nil
}

// CountToPotential converts a raw count to the output voltage it produces
// against the reference voltage.
func (d *Dev) CountToPotential(count uint16) physic.ElectricPotential {
	step := float64(d.vRef) / float64(maxCount)
	return physic.ElectricPotential(step * float64(clamp12(count)))
}

// SetVoltage converts v against the reference voltage and updates the DAC
// register with a fast write.
func (d *Dev) SetVoltage(pd PDMode, v physic.ElectricPotential) error {
	count, err := d.PotentialToCount(v)
	if err != nil {
		return err
	}
	return d.FastWrite(pd, count)
}

// Halt parks the output, count zero through the 500kOhm pull to ground. It
// implements conn.Resource. The bus stays open and owned by the caller.
func (d *Dev) Halt() error {
	return d.FastWrite(PDMode500K, 0)
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("MCP4725{%s}", &d.d)
}

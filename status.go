// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp4725

import "fmt"

// Status is a snapshot of the device state as returned by ReadStatus. It
// retains the raw five byte readback; the accessors are pure bit
// extractions, every five byte input decodes.
type Status struct {
	raw [5]byte
}

// decodeStatus wraps a raw five byte readback.
func decodeStatus(raw [5]byte) Status {
	return Status{raw: raw}
}

// EEPROMWriteComplete reports whether the last EEPROM write has finished.
// The chip keeps programming after the triggering bus transaction ends, so
// this stays false for a few milliseconds after SetDACAndEEPROM returns.
func (s Status) EEPROMWriteComplete() bool {
	return s.raw[0]&0x80 != 0
}

// POR reports the power-on-reset state.
func (s Status) POR() bool {
	return s.raw[0]&0x40 != 0
}

// PowerDown returns the power-down mode currently applied to the output.
func (s Status) PowerDown() PDMode {
	return PDMode((s.raw[0] >> 1) & pdMask)
}

// Data returns the count currently held in the DAC register.
func (s Status) Data() uint16 {
	return (uint16(s.raw[1])<<8 | uint16(s.raw[2])) >> 4
}

// EEPROMPowerDown returns the power-down mode stored in EEPROM.
func (s Status) EEPROMPowerDown() PDMode {
	return PDMode((s.raw[3] >> 5) & pdMask)
}

// EEPROMData returns the count stored in EEPROM.
func (s Status) EEPROMData() uint16 {
	return uint16(s.raw[3]&0x0f)<<8 | uint16(s.raw[4])
}

// String returns a readable rendition of all decoded fields.
func (s Status) String() string {
	return fmt.Sprintf("Status{data: 0x%03x, power: %s, por: %t, eeprom data: 0x%03x, eeprom power: %s, eeprom write complete: %t}",
		s.Data(), s.PowerDown(), s.POR(), s.EEPROMData(), s.EEPROMPowerDown(), s.EEPROMWriteComplete())
}

// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp4725

const (
	// The 0b1100 device family id occupies bits 6:3 of the 7-bit address;
	// the low three bits come from the chip's A2/A1/A0 configuration.
	addressFamily byte = 0x60

	cmdWriteDAC          byte = 0x40
	cmdWriteDACAndEEPROM byte = 0x60

	// General-call codes, written to the broadcast address, never to the
	// chip's own address.
	generalCallAddr uint16 = 0x00
	wakeUpCode      byte   = 0x06
	resetCode       byte   = 0x09

	stepCount = 1 << 12 // 12-bit D/A
	maxCount  = stepCount - 1

	pdMask byte = 0x03
)

// clamp12 saturates a count to the 12-bit range of the D/A. Oversized
// values are normalized, never rejected.
func clamp12(count uint16) uint16 {
	if count > maxCount {
		return maxCount
	}
	return count
}

// encodeAddress resolves the 7-bit bus address from the chip's three user
// address bits. Only the low three bits of userAddress are honored; wider
// values are silently masked.
func encodeAddress(userAddress byte) byte {
	return addressFamily | userAddress&0x07
}

// encodeWrite packs a power-down mode and count into the three byte write
// command. cmd selects between updating the DAC register alone and updating
// the DAC register plus EEPROM.
func encodeWrite(cmd byte, pd PDMode, count uint16) [3]byte {
	count = clamp12(count)
	return [3]byte{
		cmd | (byte(pd)&pdMask)<<1,
		byte(count >> 4),
		byte(count << 4),
	}
}

// encodeFast packs a power-down mode and count into the two byte fast write
// command. Fast writes update the DAC register only; there is no fast path
// to the EEPROM.
func encodeFast(pd PDMode, count uint16) [2]byte {
	count = clamp12(count)
	return [2]byte{
		(byte(pd)&pdMask)<<4 | byte(count>>8),
		byte(count),
	}
}

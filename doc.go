// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp4725 provides a driver for the Microchip MCP4725 single channel
// 12-bit digital to analog converter with on-board EEPROM. The chip uses VCC
// as its voltage reference.
//
// The driver issues exactly one bus transaction per call and keeps no state
// beyond the resolved device address and the reference voltage. An EEPROM
// write keeps programming inside the chip after the triggering transaction
// ends; poll ReadStatus to observe completion.
//
// # Datasheet
//
// https://ww1.microchip.com/downloads/en/devicedoc/22039d.pdf
package mcp4725

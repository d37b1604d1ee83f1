// Package mma8451 provides a driver for the MMA8451Q 3-axis accelerometer.
//
// Only the 8-bit MSB axis outputs are used: at the default 2g range one g
// reads about 64.
package mma8451

import (
	"errors"
	"fmt"

	"tinygo.org/x/drivers"
)

// ErrUnknownDevice is returned when WHO_AM_I does not match.
var ErrUnknownDevice = errors.New("mma8451: unexpected device id")

// Device wraps an I2C connection to a MMA8451Q.
type Device struct {
	bus     drivers.I2C
	Address uint16
	buf     [6]byte
}

// New creates a device on bus. The bus must already be configured.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:     bus,
		Address: Address,
	}
}

// Configure checks the device id and enables portrait/landscape detection.
func (d *Device) Configure() error {
	id, err := d.ReadRegister(WHO_AM_I)
	if err != nil {
		return fmt.Errorf("read who am i: %w", err)
	}

	if id != DeviceID {
		return fmt.Errorf("%w: %#02x", ErrUnknownDevice, id)
	}

	ctrl, err := d.ReadRegister(CTRL_REG1)
	if err != nil {
		return fmt.Errorf("read ctrl1: %w", err)
	}

	// Registers can only be changed in standby.
	if err = d.WriteRegister(CTRL_REG1, ctrl&^ctrl1Active); err != nil {
		return fmt.Errorf("enter standby: %w", err)
	}

	if err = d.WriteRegister(PL_CFG, plCfgEnabled); err != nil {
		return fmt.Errorf("enable pl detection: %w", err)
	}

	if err = d.WriteRegister(CTRL_REG1, ctrl|ctrl1Active); err != nil {
		return fmt.Errorf("enter active mode: %w", err)
	}

	return nil
}

// ReadRegister reads one register.
func (d *Device) ReadRegister(reg uint8) (uint8, error) {
	if err := d.bus.Tx(d.Address, []byte{reg}, d.buf[:1]); err != nil {
		return 0, err
	}

	return d.buf[0], nil
}

// WriteRegister writes one register.
func (d *Device) WriteRegister(reg, value uint8) error {
	return d.bus.Tx(d.Address, []byte{reg, value}, nil)
}

// Axes returns the MSB of each axis output.
func (d *Device) Axes() (x, y, z int8, err error) {
	if err = d.bus.Tx(d.Address, []byte{OUT_X_MSB}, d.buf[:6]); err != nil {
		return 0, 0, 0, err
	}

	return int8(d.buf[0]), int8(d.buf[2]), int8(d.buf[4]), nil
}

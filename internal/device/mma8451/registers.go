package mma8451

// Address is the bus address with SA0 pulled high, as on the tower board.
const Address = 0x1D

// Registers.
const (
	STATUS    = 0x00
	OUT_X_MSB = 0x01
	OUT_X_LSB = 0x02
	OUT_Y_MSB = 0x03
	OUT_Y_LSB = 0x04
	OUT_Z_MSB = 0x05
	OUT_Z_LSB = 0x06
	WHO_AM_I  = 0x0D
	PL_STATUS = 0x10
	PL_CFG    = 0x11
	CTRL_REG1 = 0x2A
)

// DeviceID is the WHO_AM_I value of the MMA8451Q.
const DeviceID = 0x1A

const (
	ctrl1Active  = 0x01
	plCfgEnabled = 0xE0
)

//go:build rp2040

package main

import (
	"errors"
	"machine"
	"picojoy/config"

	"tinygo.org/x/drivers/ssd1306"
)

var errI2CBus = errors.New("unsupported I2C bus ID")

// i2cBus returns the machine bus for a bus number
func i2cBus(bus uint8) (*machine.I2C, error) {
	switch bus {
	case 0:
		return machine.I2C0, nil
	case 1:
		return machine.I2C1, nil
	}
	return nil, errI2CBus
}

// InitDisplay brings up the I2C bus on the configured pins and the SSD1306
// behind it. The device keeps its own frame buffer; Display() pushes it.
func InitDisplay(cfg *config.Config) (*ssd1306.Device, error) {
	bus, err := i2cBus(cfg.Display.I2CBus)
	if err != nil {
		return nil, err
	}
	err = bus.Configure(machine.I2CConfig{
		Frequency: cfg.Display.I2CFreqHz,
		SDA:       machine.Pin(cfg.Pins.I2CSDA),
		SCL:       machine.Pin(cfg.Pins.I2CSCL),
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address: cfg.Display.Address,
		Width:   cfg.Display.Width,
		Height:  cfg.Display.Height,
	})
	dev.ClearDisplay()
	return dev, nil
}

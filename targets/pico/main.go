//go:build rp2040

// Command pico is the joystick firmware for an RP2040 board with an SSD1306
// OLED on I2C1, an analog joystick on ADC0/ADC1, two buttons and an RGB LED.
package main

import (
	"picojoy/config"
	"picojoy/core"
	"time"
)

func main() {
	InitUSB()
	InitClock()

	// Give the host a moment to open the CDC port before the banner
	time.Sleep(500 * time.Millisecond)

	core.SetDebugWriter(DebugPrintln)

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		failBoot("config", err)
	}

	core.SetADCDriver(NewRPAdcDriver())
	core.SetGPIODriver(NewRPGPIODriver())

	pwmDriver, err := newPWMDriver(cfg)
	if err != nil {
		failBoot("pwm", err)
	}
	core.SetPWMDriver(pwmDriver)

	display, err := InitDisplay(cfg)
	if err != nil {
		failBoot("display", err)
	}

	fw := core.NewFirmware(cfg, core.NewCanvas(display))
	if err := fw.Init(); err != nil {
		failBoot("init", err)
	}
	fw.Run()
}

// Command joymon prints the joystick firmware's diagnostic stream and a
// summary of what it saw.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"picojoy/host/monitor"
	"picojoy/host/serial"
	"picojoy/protocol"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	cfgPath = flag.String("config", "", "YAML settings file; flags given explicitly override it")
	count   = flag.Int("count", 0, "Stop after this many coordinate lines (0 = until interrupted)")
	quiet   = flag.Bool("quiet", false, "Print only the summary")
	flush   = flag.Bool("flush", true, "Discard input buffered before start")
)

func main() {
	flag.Parse()

	settings, err := loadSettings()
	if err != nil {
		log.Fatalf("load settings failed: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	port, err := serial.Open(settings.SerialConfig())
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer port.Close()

	if *flush {
		if err := port.Flush(); err != nil {
			log.Printf("flush failed: %v", err)
		}
	}

	if !settings.Quiet {
		fmt.Printf("joymon %s on %s (banner %q)\n", protocol.Version, settings.Device, settings.Banner)
	}

	m := monitor.New(settings, os.Stdout)
	m.Follow = true
	runErr := m.Run(ctx, port)

	fmt.Println(m.Summary())
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// loadSettings starts from the file (or defaults) and applies the flags the
// user actually passed
func loadSettings() (*monitor.Settings, error) {
	s := monitor.DefaultSettings()
	if *cfgPath != "" {
		var err error
		if s, err = monitor.LoadSettings(*cfgPath); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "device":
			s.Device = *device
		case "baud":
			s.Baud = *baud
		case "count":
			s.Count = *count
		case "quiet":
			s.Quiet = *quiet
		}
	})

	return s, s.Validate()
}

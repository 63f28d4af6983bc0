// Command flash93 reads, writes and erases 93Cxx serial EEPROMs over a
// spidev-style SPI bus.
//
// Examples:
//
//	flash93 -spi-device /dev/spidev2.0 -read eeprom.bin -type 93c66 -x16
//	flash93 -spi-device /dev/spidev2.0 -erase -addr-bits 8 -size 512 -x16
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/flashkit/go-93cxx/bus"
	"github.com/flashkit/go-93cxx/device"
	"github.com/flashkit/go-93cxx/programmer"
	"github.com/flashkit/go-93cxx/protocol"
)

func main() {
	var (
		spiDev       = flag.String("spi-device", "/dev/spidev1.0", "SPI device to use")
		partType     = flag.String("type", "", "EEPROM type/part number from the catalog")
		addrBits     = flag.Uint("addr-bits", 0, "number of address bits in the command header")
		size         = flag.Uint("size", 0, "size of the EEPROM in bytes")
		x16          = flag.Bool("x16", false, "use 16-bit organization")
		readFile     = flag.String("read", "", "save contents of the EEPROM to this file")
		writeFile    = flag.String("write", "", "write contents of this file to the EEPROM")
		erase        = flag.Bool("erase", false, "erase the EEPROM")
		burstRead    = flag.Bool("burst-read", false, "read the EEPROM in a single read command")
		profilesFile = flag.String("profiles", "", "YAML file with additional part definitions")
		readyTimeout = flag.Duration("ready-timeout", time.Second, "how long to wait for write completion (0 = forever)")
		speed        = flag.Uint("speed", protocol.ClockSpeedHz, "bus clock in Hz")
	)
	flag.Parse()

	if err := run(*spiDev, *partType, uint16(*size), uint8(*addrBits), *x16,
		*readFile, *writeFile, *erase, *burstRead, *profilesFile, *readyTimeout, uint32(*speed)); err != nil {
		log.Fatal(err)
	}
}

func run(spiDev, partType string, size uint16, addrBits uint8, x16 bool,
	readFile, writeFile string, erase, burstRead bool,
	profilesFile string, readyTimeout time.Duration, speed uint32) error {

	actions := 0
	for _, set := range []bool{readFile != "", writeFile != "", erase} {
		if set {
			actions++
		}
	}
	if actions != 1 {
		flag.Usage()
		return fmt.Errorf("specify exactly one of -read, -write or -erase")
	}

	cfg := device.Config{
		Type:     partType,
		Size:     size,
		AddrBits: addrBits,
		X16:      x16,
	}

	if profilesFile != "" {
		f, err := os.Open(profilesFile)
		if err != nil {
			return fmt.Errorf("open profiles: %w", err)
		}
		extra, err := device.LoadCatalog(f)
		f.Close()
		if err != nil {
			return err
		}
		cfg.Extra = extra
	}

	profile, err := cfg.Resolve()
	if err != nil {
		return err
	}
	sel, err := profile.Select(x16)
	if err != nil {
		return err
	}

	org := "x8"
	if sel.X16() {
		org = "x16"
	}
	log.Printf("EEPROM config: %s, %d%s, %d command address bits",
		sel.Name(), sel.Words(), org, sel.AddrBits())

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("init host drivers: %w", err)
	}
	port, err := spireg.Open(spiDev)
	if err != nil {
		return fmt.Errorf("open SPI device: %w", err)
	}
	defer port.Close()

	// Mode 0 clocking. The family additionally wants the select line
	// active-high (SPI_CS_HIGH); configure the controller or wiring
	// accordingly.
	conn, err := port.Connect(physic.Frequency(speed)*physic.Hertz, spi.Mode0, protocol.BitsPerWord)
	if err != nil {
		return fmt.Errorf("configure SPI device: %w", err)
	}

	prog := programmer.New(bus.NewPeriph(conn), sel,
		programmer.WithBurstRead(burstRead),
		programmer.WithReadyTimeout(readyTimeout),
		programmer.WithClockSpeed(speed),
		programmer.WithProgressCallback(func(p programmer.Progress) {
			if p.Phase == programmer.PhaseComplete {
				fmt.Printf("\r%s: 100.0%%\n", p.Phase)
			} else {
				fmt.Printf("\r%s: %5.1f%%", p.Phase, p.Percentage)
			}
		}),
	)

	ctx := context.Background()

	switch {
	case readFile != "":
		img, err := prog.ReadImage(ctx)
		if err != nil {
			return err
		}
		if err := os.WriteFile(readFile, img, 0o644); err != nil {
			return fmt.Errorf("save image: %w", err)
		}
		log.Printf("read %d bytes to %s", len(img), readFile)

	case writeFile != "":
		img, err := os.ReadFile(writeFile)
		if err != nil {
			return fmt.Errorf("load image: %w", err)
		}
		if err := prog.WriteImage(ctx, img); err != nil {
			return err
		}
		log.Printf("wrote %d bytes from %s", len(img), writeFile)

	case erase:
		if err := prog.Erase(ctx); err != nil {
			return err
		}
		log.Printf("erased %s", sel.Name())
	}

	return nil
}

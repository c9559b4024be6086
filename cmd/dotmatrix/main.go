package main

import (
	"flag"
	"os"
	"strings"

	"github.com/dotmatrix-emulator/dotmatrix/internal/gameboy"
	"github.com/dotmatrix-emulator/dotmatrix/pkg/display"
	_ "github.com/dotmatrix-emulator/dotmatrix/pkg/display/web"
	"github.com/dotmatrix-emulator/dotmatrix/pkg/log"
	"github.com/dotmatrix-emulator/dotmatrix/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "the rom file to load (gb, zip, gz or 7z)")
	driver := flag.String("driver", "sdl", "display driver ("+strings.Join(display.Installed(), ", ")+")")
	debug := flag.Bool("debug", false, "log serial output")
	flag.Parse()

	logger := log.New()
	if *debug {
		logger = log.NewDebug()
	}

	if *romFile == "" {
		chosen, err := utils.AskForFile("Open ROM", ".")
		if err != nil {
			logger.Errorf("no rom file given: %v", err)
			os.Exit(1)
		}
		*romFile = chosen
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("loading %s: %v", *romFile, err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	d := display.Get(*driver)
	if d == nil {
		logger.Errorf("unknown display driver %q (installed: %s)", *driver, strings.Join(display.Installed(), ", "))
		os.Exit(1)
	}

	title := gb.Bus.Cartridge.Title()
	if err := d.Start(title); err != nil {
		logger.Errorf("starting %s driver: %v", *driver, err)
		os.Exit(1)
	}
	defer func() {
		_ = d.Stop()
	}()

	logger.Infof("running %s", title)
	if err := gb.Run(d); err != nil {
		logger.Errorf("emulation stopped: %v", err)
		os.Exit(1)
	}
}

// Package tests runs conformance ROMs against the emulator.
// The ROM corpus is not distributed with the repository; every
// test skips when its ROM is missing from the roms/ tree.
package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotmatrix-emulator/dotmatrix/internal/gameboy"
	"github.com/dotmatrix-emulator/dotmatrix/pkg/utils"
)

const romsDir = "roms"

// maxFrames caps a serial test at two minutes of emulated
// time, which is comfortably beyond the slowest ROM verdict.
const maxFrames = 60 * 120

// loadROM reads a test ROM, skipping the test when the corpus
// is not present.
func loadROM(t *testing.T, path string) []byte {
	t.Helper()
	full := filepath.Join(romsDir, path)
	if _, err := os.Stat(full); err != nil {
		t.Skipf("rom %s not present", full)
	}
	rom, err := utils.LoadFile(full)
	if err != nil {
		t.Fatalf("loading %s: %v", full, err)
	}
	return rom
}

// runSerialTest runs a ROM that reports its verdict over the
// link port and returns the accumulated serial output.
func runSerialTest(t *testing.T, path string) string {
	t.Helper()

	var output string
	gb, err := gameboy.New(loadROM(t, path), gameboy.SerialDebugger(&output))
	if err != nil {
		t.Fatalf("creating emulator: %v", err)
	}

	for frame := 0; frame < maxFrames && !gb.DebugBreakpoint; frame++ {
		if _, err := gb.Frame(); err != nil {
			t.Fatalf("emulation error: %v", err)
		}
	}
	return output
}

// expectPassed asserts a serial ROM printed "Passed".
func expectPassed(t *testing.T, path string) {
	t.Helper()
	output := runSerialTest(t, path)
	if !strings.Contains(output, "Passed") {
		t.Errorf("%s: %q", path, output)
	}
}

// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"github.com/dotmatrix-emulator/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emulator/dotmatrix/internal/types"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// pressed holds the state of all 8 buttons, 1 = pressed.
	// Bits 0-3 are the action buttons (A, B, Select, Start),
	// bits 4-7 are the direction keys (Right, Left, Up, Down).
	pressed uint8

	// selection holds bits 4-5 of the last write to types.P1,
	// 0 = selected.
	selection uint8

	irq *interrupts.Service
}

// New returns a new joypad state.
func New(irq *interrupts.Service) *State {
	return &State{
		selection: types.Bit4 | types.Bit5,
		irq:       irq,
	}
}

// Read returns the types.P1 register: the selection bits as
// written, and the selected button group in bits 0-3 with 0
// meaning pressed.
func (s *State) Read() uint8 {
	v := 0xC0 | s.selection
	var lines uint8
	if s.selection&types.Bit4 == 0 {
		lines |= s.pressed >> 4 & 0x0F
	}
	if s.selection&types.Bit5 == 0 {
		lines |= s.pressed & 0x0F
	}
	return v | (lines ^ 0x0F)
}

// Write writes the types.P1 register. Only the selection bits
// (4-5) are writable.
func (s *State) Write(v uint8) {
	s.selection = v & (types.Bit4 | types.Bit5)
}

// Press presses a button, requesting a joypad interrupt if the
// button's group is currently selected.
func (s *State) Press(button Button) {
	s.pressed |= types.Bit0 << button

	selected := (button < 4 && s.selection&types.Bit5 == 0) ||
		(button >= 4 && s.selection&types.Bit4 == 0)
	if selected {
		s.irq.Request(interrupts.JoypadFlag)
	}
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.pressed &^= types.Bit0 << button
}

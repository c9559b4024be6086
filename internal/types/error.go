package types

import "fmt"

// AddressingError is returned when a read or write targets an
// address outside the owning component's address window.
type AddressingError struct {
	Address   uint16 // the offending address
	Component string // the component that rejected it
}

func (e AddressingError) Error() string {
	return fmt.Sprintf("%s: address %04X outside owned window", e.Component, e.Address)
}

// Package model defines the core domain entities for the pizzeria order service.
package model

import "fmt"

// Cents is a monetary amount in euro cents.
//
// All arithmetic on prices and totals happens on this integer type so that
// repeated additions never accumulate floating-point drift. Amounts are
// rendered with two decimals only at the display boundary.
type Cents int64

// Format renders the amount as a fixed two-decimal euro string, e.g. "4.90 €".
func (c Cents) Format() string {
	sign := ""
	v := c
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d €", sign, v/100, v%100)
}

// Mul returns the amount multiplied by an integer quantity.
func (c Cents) Mul(quantity int) Cents {
	return c * Cents(quantity)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCents_Format(t *testing.T) {
	tests := []struct {
		name     string
		amount   Cents
		expected string
	}{
		{name: "whole euros", amount: 800, expected: "8.00 €"},
		{name: "cents below ten", amount: 205, expected: "2.05 €"},
		{name: "typical price", amount: 490, expected: "4.90 €"},
		{name: "zero", amount: 0, expected: "0.00 €"},
		{name: "negative", amount: -150, expected: "-1.50 €"},
		{name: "large total", amount: 123456, expected: "1234.56 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.amount.Format())
		})
	}
}

func TestCents_Mul(t *testing.T) {
	assert.Equal(t, Cents(400), Cents(200).Mul(2))
	assert.Equal(t, Cents(0), Cents(250).Mul(0))
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walterflo/pizzeria-service/internal/domain/model"
)

func TestOrderFormatter_RefusesEmptyCart(t *testing.T) {
	f := NewOrderFormatter()

	_, err := f.FormatOrderMessage(model.Cart{}, "12:30")

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderFormatter_RefusesMissingPickupTime(t *testing.T) {
	f := NewOrderFormatter()
	cart := model.Cart{Lines: []model.Line{
		{Key: model.LineKey{ItemID: "fromage", Size: model.SizeQuarter}, Name: "Fromage", UnitPrice: 200, Quantity: 1},
	}}

	_, err := f.FormatOrderMessage(cart, "")

	assert.ErrorIs(t, err, ErrMissingPickupTime)
}

func TestOrderFormatter_FullMessage(t *testing.T) {
	f := NewOrderFormatter()
	cart := model.Cart{Lines: []model.Line{
		{Key: model.LineKey{ItemID: "fromage", Size: model.SizeQuarter}, Name: "Fromage", UnitPrice: 200, Quantity: 2},
		{Key: model.LineKey{ItemID: "chausson"}, Name: "Chausson", UnitPrice: 490, Quantity: 1},
		{Key: model.LineKey{ItemID: "menu-etudiant"}, Name: "MENU ÉTUDIANT", UnitPrice: 690, Quantity: 1},
	}}

	message, err := f.FormatOrderMessage(cart, "12:30")
	require.NoError(t, err)

	expected := "Bonjour! Je souhaite passer une commande:\n" +
		"\n" +
		"• 2x Fromage (1/4) - 4.00 €\n" +
		"• 1x Chausson  - 4.90 €\n" +
		"• 1x MENU ÉTUDIANT  - 6.90 € (Précisez la pizza/boisson/dessert)\n" +
		"\n" +
		"*TOTAL: 15.80 €*\n" +
		"\n" +
		"🕒 *Heure de retrait: 12:30*\n" +
		"\n" +
		"Merci!"
	assert.Equal(t, expected, message)
}

func TestOrderFormatter_BundleAnnotationAndPickupTime(t *testing.T) {
	// Scenario: student menu alone, pickup at 12:30
	f := NewOrderFormatter()
	cart := model.Cart{Lines: []model.Line{
		{Key: model.LineKey{ItemID: "menu-etudiant"}, Name: "MENU ÉTUDIANT", UnitPrice: 690, Quantity: 1},
	}}

	message, err := f.FormatOrderMessage(cart, "12:30")
	require.NoError(t, err)

	assert.Contains(t, message, "(Précisez la pizza/boisson/dessert)")
	assert.Contains(t, message, "🕒 *Heure de retrait: 12:30*")
}

func TestOrderFormatter_SizeLabels(t *testing.T) {
	f := NewOrderFormatter()

	tests := []struct {
		size     model.Size
		expected string
	}{
		{model.SizeQuarter, "• 1x Fromage (1/4) - 2.00 €"},
		{model.SizeHalf, "• 1x Fromage (1/2) - 2.00 €"},
		{model.SizeFull, "• 1x Fromage (Entière) - 2.00 €"},
	}

	for _, tt := range tests {
		cart := model.Cart{Lines: []model.Line{
			{Key: model.LineKey{ItemID: "fromage", Size: tt.size}, Name: "Fromage", UnitPrice: 200, Quantity: 1},
		}}
		message, err := f.FormatOrderMessage(cart, "11:00")
		require.NoError(t, err)
		assert.Contains(t, message, tt.expected)
	}
}

func TestOrderFormatter_Idempotent(t *testing.T) {
	f := NewOrderFormatter()
	cart := model.Cart{Lines: []model.Line{
		{Key: model.LineKey{ItemID: "fromage", Size: model.SizeQuarter}, Name: "Fromage", UnitPrice: 200, Quantity: 2},
		{Key: model.LineKey{ItemID: "chausson"}, Name: "Chausson", UnitPrice: 490, Quantity: 1},
	}}

	first, err := f.FormatOrderMessage(cart, "12:30")
	require.NoError(t, err)
	second, err := f.FormatOrderMessage(cart, "12:30")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOrderFormatter_NeedsClarification(t *testing.T) {
	f := NewOrderFormatter()

	tests := []struct {
		name         string
		line         model.Line
		expectedNote string
		expected     bool
	}{
		{
			name:         "name with ou marker",
			line:         model.Line{Key: model.LineKey{ItemID: "panuozzo"}, Name: "Panuozzo (Poulet Crispy ou Bagnat)"},
			expectedNote: " (À préciser: qual?)",
			expected:     true,
		},
		{
			name:         "uppercase OU still matches",
			line:         model.Line{Key: model.LineKey{ItemID: "kebab-poulet", Size: model.SizeHalf}, Name: "Kebab OU Poulet Curry Crème"},
			expectedNote: " (À préciser: qual?)",
			expected:     true,
		},
		{
			name:         "student menu matches by id",
			line:         model.Line{Key: model.LineKey{ItemID: "menu-etudiant"}, Name: "MENU ÉTUDIANT"},
			expectedNote: " (Précisez la pizza/boisson/dessert)",
			expected:     true,
		},
		{
			name:     "plain item has no note",
			line:     model.Line{Key: model.LineKey{ItemID: "fromage", Size: model.SizeQuarter}, Name: "Fromage"},
			expected: false,
		},
		{
			name:     "ou inside a word does not match",
			line:     model.Line{Key: model.LineKey{ItemID: "lardon", Size: model.SizeFull}, Name: "La Lardon Ouverte"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, ok := f.NeedsClarification(tt.line)
			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, tt.expectedNote, note)
		})
	}
}

func TestOrderFormatter_WithBundleID(t *testing.T) {
	f := NewOrderFormatter(WithBundleID("menu-famille"))

	note, ok := f.NeedsClarification(model.Line{Key: model.LineKey{ItemID: "menu-famille"}, Name: "MENU FAMILLE"})
	assert.True(t, ok)
	assert.Equal(t, " (Précisez la pizza/boisson/dessert)", note)

	_, ok = f.NeedsClarification(model.Line{Key: model.LineKey{ItemID: "menu-etudiant"}, Name: "MENU SANS CHOIX"})
	assert.False(t, ok)
}

func TestOrderFormatter_FormatPickupOrder(t *testing.T) {
	f := NewOrderFormatter()
	order := model.PickupOrder{
		Cart: model.Cart{Lines: []model.Line{
			{Key: model.LineKey{ItemID: "fromage", Size: model.SizeFull}, Name: "Fromage", UnitPrice: 800, Quantity: 1},
		}},
		PickupTime: "13:15",
	}

	message, err := f.FormatPickupOrder(order)
	require.NoError(t, err)
	assert.Contains(t, message, "Heure de retrait: 13:15")
}

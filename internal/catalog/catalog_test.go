package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walterflo/pizzeria-service/internal/domain/model"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestDefault_Contents(t *testing.T) {
	cat, err := New(Default())
	require.NoError(t, err)

	assert.Len(t, cat.Pizzas(), 15)
	assert.Len(t, cat.Specialties(), 2)
	assert.Len(t, cat.Menus(), 1)

	fromage, ok := cat.Find("fromage")
	require.True(t, ok)
	assert.Equal(t, model.Cents(200), fromage.Prices[model.SizeQuarter])
	assert.Equal(t, model.Cents(800), fromage.Prices[model.SizeFull])

	menu, ok := cat.Find(StudentMenuID)
	require.True(t, ok)
	assert.Equal(t, model.KindBundle, menu.Kind)
	assert.Equal(t, model.Cents(690), menu.Price)
	assert.Len(t, menu.Includes, 3)

	_, ok = cat.Find("calzone")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	sized := func(id string) model.Item {
		return model.Item{
			ID:   id,
			Name: id,
			Kind: model.KindSized,
			Prices: map[model.Size]model.Cents{
				model.SizeQuarter: 250,
				model.SizeHalf:    480,
				model.SizeFull:    950,
			},
		}
	}

	tests := []struct {
		name    string
		items   []model.Item
		wantErr string
	}{
		{
			name:  "valid catalog",
			items: []model.Item{sized("a"), {ID: "b", Kind: model.KindFixed, Price: 490}},
		},
		{
			name:    "duplicate id",
			items:   []model.Item{sized("a"), sized("a")},
			wantErr: "duplicate item id",
		},
		{
			name:    "empty id",
			items:   []model.Item{{Name: "x", Kind: model.KindFixed}},
			wantErr: "empty id",
		},
		{
			name: "missing size price",
			items: []model.Item{{
				ID:     "a",
				Kind:   model.KindSized,
				Prices: map[model.Size]model.Cents{model.SizeFull: 950},
			}},
			wantErr: "missing price",
		},
		{
			name:    "negative fixed price",
			items:   []model.Item{{ID: "a", Kind: model.KindFixed, Price: -1}},
			wantErr: "negative price",
		},
		{
			name:    "bundle without inclusions",
			items:   []model.Item{{ID: "a", Kind: model.KindBundle, Price: 690}},
			wantErr: "no inclusions",
		},
		{
			name:    "unknown kind",
			items:   []model.Item{{ID: "a", Kind: "drink"}},
			wantErr: "unknown kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.items)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_RejectsInvalid(t *testing.T) {
	_, err := New([]model.Item{{Name: "nameless", Kind: model.KindFixed}})
	assert.Error(t, err)
}

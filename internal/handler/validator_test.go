package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMixBody struct {
	Product     string   `json:"product" validate:"required,catalogname,max=64"`
	Ingredients []string `json:"ingredients" validate:"max=4,dive,required,catalogname"`
}

func TestValidator_CatalogName(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		product string
		wantErr bool
	}{
		{"tag", "Marijuana(Calming)", false},
		{"display name with spaces", "OG Kush", false},
		{"unicode", "Café Crème", false},
		{"blank", "   ", true},
		{"missing", "", true},
		{"control character", "Meth\x00", true},
		{"newline", "Me\nth", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testMixBody{Product: tt.product})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Dive(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(testMixBody{Product: "Meth", Ingredients: []string{"Cuke", "Horse Semen"}}))
	assert.Error(t, v.ValidateStruct(testMixBody{Product: "Meth", Ingredients: []string{"Cuke", ""}}))
	assert.Error(t, v.ValidateStruct(testMixBody{Product: "Meth", Ingredients: []string{"a", "b", "c", "d", "e"}}))
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	t.Run("uses json field names", func(t *testing.T) {
		err := v.ValidateStruct(testMixBody{Ingredients: []string{"Cuke", " "}})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "This field is required", fields["product"])
		assert.Equal(t, "Must be a non-blank name without control characters", fields["ingredients[1]"])
	})

	t.Run("max message", func(t *testing.T) {
		err := v.ValidateStruct(testMixBody{Product: strings.Repeat("x", 70)})
		require.Error(t, err)
		assert.Equal(t, "Must be at most 64", FormatValidationError(err)["product"])
	})

	t.Run("non validation error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}

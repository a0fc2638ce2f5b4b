package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat64(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{`500`, 500, false},
		{`0.25`, 0.25, false},
		{`"650"`, 650, false},
		{`" 12.5 "`, 12.5, false},
		{`"-3"`, -3, false},
		{`"mucho"`, 0, true},
		{`"NaN"`, 0, true},
		{`"Inf"`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f FlexFloat64
			err := json.Unmarshal([]byte(tt.in), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Float64())
		})
	}

	out, err := json.Marshal(FlexFloat64(2.5))
	require.NoError(t, err)
	assert.JSONEq(t, `2.5`, string(out))
}

func TestParseFlexList(t *testing.T) {
	type item struct {
		Nombre string `json:"nombre"`
	}

	single, err := ParseFlexList[item]([]byte(` {"nombre": "Cafeína"} `))
	require.NoError(t, err)
	assert.Equal(t, []item{{"Cafeína"}}, single)

	many, err := ParseFlexList[item]([]byte(`[{"nombre": "a"}, {"nombre": "b"}]`))
	require.NoError(t, err)
	assert.Len(t, many, 2)

	none, err := ParseFlexList[item]([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = ParseFlexList[item]([]byte(`[{"nombre": 1}]`))
	require.Error(t, err)
}

func TestCustomErrorKinds(t *testing.T) {
	nf := NewNotFoundError("Compuesto con ID x no encontrado", "compuesto")
	assert.Equal(t, http.StatusNotFound, nf.Code)
	assert.ErrorIs(t, nf, ErrNotFound)
	assert.NotErrorIs(t, nf, ErrValidation)

	wrapped := fmt.Errorf("lookup: %w", NewValidationError("Fabricante cannot be empty", "medicamento"))
	assert.ErrorIs(t, wrapped, ErrValidation)

	var ce *CustomError
	require.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, http.StatusBadRequest, ce.Code)
	assert.Equal(t, "400: Fabricante cannot be empty [type: medicamento]", ce.Error())
}

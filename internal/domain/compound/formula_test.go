package compound

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/periodic-combinator/pkg/errors"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		formula string
		want    []string
	}{
		{"H2O", []string{"H", "H", "O"}},
		{"NaCl", []string{"Na", "Cl"}},
		{"HI", []string{"H", "I"}},
		{"CO2", []string{"C", "O", "O"}},
		{"C2H5OH", []string{"C", "C", "H", "H", "H", "H", "H", "O", "H"}},
		{"Mg(OH)2", []string{"Mg", "O", "H", "O", "H"}},
		{"Ca3(PO4)2", []string{"Ca", "Ca", "Ca", "P", "O", "O", "O", "O", "P", "O", "O", "O", "O"}},
		{"K4(Fe(CN)6)", []string{"K", "K", "K", "K", "Fe",
			"C", "N", "C", "N", "C", "N", "C", "N", "C", "N", "C", "N"}},
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			got, err := ParseFormula(tt.formula)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormula_SucroseSize(t *testing.T) {
	got, err := ParseFormula("C12H22O11")
	require.NoError(t, err)
	assert.Len(t, got, 45)
}

func TestParseFormula_Errors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"h2o",
		"2H",
		"H0",
		"H2O)",
		"(OH",
		"()",
		"Na-Cl",
		"H" + strings.Repeat("9", 5),
		"(H999)9",
	}

	for _, formula := range tests {
		t.Run(formula, func(t *testing.T) {
			got, err := ParseFormula(formula)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.CodeInvalidFormula), "got %v", err)
		})
	}
}

func TestHillFormula(t *testing.T) {
	tests := []struct {
		name    string
		symbols []string
		want    string
	}{
		{"empty", nil, ""},
		{"water", []string{"O", "H", "H"}, "H2O"},
		{"salt", []string{"Na", "Cl"}, "ClNa"},
		{"methane", []string{"H", "C", "H", "H", "H"}, "CH4"},
		{"ethanol", []string{"C", "C", "H", "H", "H", "H", "H", "O", "H"}, "C2H6O"},
		{"carbon with others", []string{"O", "C", "Ca", "O", "O"}, "CCaO3"},
		{"single", []string{"Fe"}, "Fe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HillFormula(tt.symbols))
		})
	}
}

func TestHillFormula_DoesNotMutateInput(t *testing.T) {
	in := []string{"O", "H", "H"}
	HillFormula(in)
	assert.Equal(t, []string{"O", "H", "H"}, in)
}

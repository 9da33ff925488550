package cli

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementCommand(t *testing.T) {
	out, err := execute(t, "element", "Na")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: Sodium")
	assert.Contains(t, out, "Atomic Number: 11")
	assert.Contains(t, out, "Mass: 22.99")
	assert.Contains(t, out, "Electron Config: [Ne] 3s1")
}

func TestElementCommand_JSON(t *testing.T) {
	out, err := execute(t, "-o", "json", "element", "Na")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Na", got["symbol"])
	assert.Equal(t, "alkali_metal", got["category"])
	assert.NotContains(t, got, "Info")
}

func TestElementCommand_NotFound(t *testing.T) {
	_, err := execute(t, "element", "Xx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestElementList_CategoryFilter(t *testing.T) {
	out, err := execute(t, "-o", "table", "element", "list", "--category", "noble_gas")
	require.NoError(t, err)
	assert.Contains(t, out, "Helium")
	assert.Contains(t, out, "Radon")
	assert.NotContains(t, out, "Sodium")
	assert.Contains(t, out, "2-8-8")

	_, err = execute(t, "element", "list", "--category", "gas")
	assert.Error(t, err)
}

func TestCompoundMatch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"separate symbols", []string{"H", "O", "H"}, "Created Water (H2O)"},
		{"comma list", []string{"Cl,Na"}, "Created Sodium Chloride (NaCl)"},
		{"formula", []string{"H2O"}, "Created Water (H2O)"},
		{"no compound", []string{"H", "H"}, "No compound formed (H2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"compound", "match"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCompoundMatch_JSON(t *testing.T) {
	out, err := execute(t, "-o", "json", "compound", "match", "Na", "Cl")
	require.NoError(t, err)

	var got MatchView
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Found)
	assert.Equal(t, "NaCl", got.Formula)
	assert.Equal(t, []string{"Na", "Cl"}, got.Attempted)
	assert.Contains(t, got.Info, "Name: Sodium Chloride")
}

func TestCompoundMatch_Errors(t *testing.T) {
	_, err := execute(t, "compound", "match", "h2o")
	assert.Error(t, err)

	_, err = execute(t, "compound", "match", "C100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 48 symbols")
}

func TestCompoundShowAndList(t *testing.T) {
	out, err := execute(t, "compound", "show", "NaCl")
	require.NoError(t, err)
	assert.Contains(t, out, "Uses: Table salt, food preservative")

	_, err = execute(t, "compound", "show", "H2")
	assert.Error(t, err)

	out, err = execute(t, "-o", "table", "compound", "list")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Water"), strings.Index(out, "Sodium Chloride"))
}

func TestLocateCommand(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{"hydrogen", "90", "10", "row 0 col 0: H (Hydrogen)"},
		{"empty cell", "147", "10", "row 0 col 1: empty"},
		{"marker", "199", "404", `placeholder "*"`},
		{"left of table", "10", "10", "outside the table"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "locate", "--x", tt.x, "--y", tt.y)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestLocateCommand_JSONKeepsZeroRowAndCol(t *testing.T) {
	out, err := execute(t, "-o", "json", "locate", "--x", "90", "--y", "10")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, true, got["in_table"])
	assert.Equal(t, float64(0), got["row"])
	assert.Equal(t, float64(0), got["col"])
	assert.Equal(t, "H", got["cell"])
	assert.Equal(t, "Hydrogen", got["element"])
}

func TestLocateCommand_RequiresFlags(t *testing.T) {
	_, err := execute(t, "locate", "--x", "90")
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	out, err := execute(t, "render", "--out", path, "--merge", "Na,Cl", "--press-merge", "--pointer", "90,10")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1280, img.Bounds().Dx())
	assert.Equal(t, 720, img.Bounds().Dy())
}

func TestRenderCommand_Stdout(t *testing.T) {
	out, err := execute(t, "render", "--out", "-", "--select", "O")
	require.NoError(t, err)
	_, err = png.Decode(strings.NewReader(out))
	assert.NoError(t, err)
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"bad pointer", []string{"--pointer", "1;2"}},
		{"unknown merge symbol", []string{"--merge", "Xx"}},
		{"unknown select", []string{"--select", "Xx"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", "--out", filepath.Join(dir, tt.name+".png")}, tt.args...)
			_, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 12 , 34 ")
	require.NoError(t, err)
	assert.Equal(t, 12, p.X)
	assert.Equal(t, 34, p.Y)

	_, err = parsePoint("12")
	assert.Error(t, err)
	_, err = parsePoint("a,b")
	assert.Error(t, err)
}

func TestCatalogValidate(t *testing.T) {
	out, err := execute(t, "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog embedded is valid: 118 elements")
	assert.Contains(t, out, "11x18 layout")
}

func TestCatalogValidate_File(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
elements:
  - {symbol: H, name: Hydrogen, atomic_number: 1, atomic_mass: 1.008, shells: [1], category: nonmetal}
  - {symbol: O, name: Oxygen, atomic_number: 8, atomic_mass: 15.999, shells: [2, 6], category: nonmetal}
compounds:
  - {formula: H2O, name: Water}
layout:
  - [H, ""]
`), 0o600))

	out, err := execute(t, "-o", "json", "catalog", "validate", "--file", good)
	require.NoError(t, err)
	var report CatalogReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Elements)
	assert.Equal(t, 1, report.Compounds)
	assert.Equal(t, 3, report.MaxMerge)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "O")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("elements: [\n"), 0o600))
	_, err = execute(t, "catalog", "validate", "--file", bad)
	assert.Error(t, err)
}

func TestCatalogDump(t *testing.T) {
	out, err := execute(t, "catalog", "dump")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Default catalog"))
	assert.Contains(t, out, `formula: "H2O"`)
}

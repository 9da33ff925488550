package catalog

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/turtacn/periodic-combinator/internal/domain/element"
)

// hclDocument is the HCL form of a catalog file:
//
//	element "H" {
//	  name            = "Hydrogen"
//	  atomic_number   = 1
//	  atomic_mass     = 1.008
//	  electron_config = "1s1"
//	  shells          = [1]
//	  category        = "nonmetal"
//	}
//
//	compound "H2O" {
//	  name = "Water"
//	  uses = "Essential for life, solvent"
//	}
//
//	layout = [["H", "", "He"]]
type hclDocument struct {
	Elements  []hclElement  `hcl:"element,block"`
	Compounds []hclCompound `hcl:"compound,block"`
	Layout    [][]string    `hcl:"layout"`
}

type hclElement struct {
	Symbol         string  `hcl:"symbol,label"`
	Name           string  `hcl:"name"`
	AtomicNumber   int     `hcl:"atomic_number"`
	AtomicMass     float64 `hcl:"atomic_mass"`
	ElectronConfig string  `hcl:"electron_config,optional"`
	Shells         []int   `hcl:"shells"`
	Category       string  `hcl:"category"`
}

type hclCompound struct {
	Formula    string   `hcl:"formula,label"`
	Name       string   `hcl:"name"`
	Elements   []string `hcl:"elements,optional"`
	Uses       string   `hcl:"uses,optional"`
	Properties string   `hcl:"properties,optional"`
}

// decodeHCL parses an HCL catalog into the common document form.  Unknown
// blocks and attributes are reported by gohcl as errors.
func decodeHCL(name string, data []byte) (document, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return document{}, diags
	}
	var raw hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return document{}, diags
	}

	doc := document{
		Elements:  make([]element.Element, 0, len(raw.Elements)),
		Compounds: make([]compoundRecord, 0, len(raw.Compounds)),
		Layout:    raw.Layout,
	}
	for _, e := range raw.Elements {
		doc.Elements = append(doc.Elements, element.Element{
			Symbol:         e.Symbol,
			Name:           e.Name,
			AtomicNumber:   e.AtomicNumber,
			AtomicMass:     e.AtomicMass,
			ElectronConfig: e.ElectronConfig,
			Shells:         e.Shells,
			Category:       element.Category(e.Category),
		})
	}
	for _, c := range raw.Compounds {
		doc.Compounds = append(doc.Compounds, compoundRecord(c))
	}
	return doc, nil
}

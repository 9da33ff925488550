package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/periodic-combinator/internal/infrastructure/catalog"
)

// CatalogReport summarizes a validated catalog.
type CatalogReport struct {
	Source    string   `json:"source"`
	Elements  int      `json:"elements"`
	Compounds int      `json:"compounds"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	MaxMerge  int      `json:"max_compound_size"`
	Warnings  []string `json:"warnings"`
}

func (r CatalogReport) String() string {
	s := fmt.Sprintf("catalog %s is valid: %d elements, %d compounds, %dx%d layout, largest compound %d atoms",
		r.Source, r.Elements, r.Compounds, r.Rows, r.Cols, r.MaxMerge)
	for _, w := range r.Warnings {
		s += "\nwarning: " + w
	}
	return s
}

func (r CatalogReport) TableHeaders() []string { return []string{"Check", "Result"} }

func (r CatalogReport) TableRows() [][]string {
	rows := [][]string{
		{"source", r.Source},
		{"elements", fmt.Sprint(r.Elements)},
		{"compounds", fmt.Sprint(r.Compounds)},
		{"layout", fmt.Sprintf("%dx%d", r.Rows, r.Cols)},
		{"largest compound", fmt.Sprint(r.MaxMerge)},
	}
	for _, w := range r.Warnings {
		rows = append(rows, []string{"warning", w})
	}
	return rows
}

// NewCatalogCmd creates the catalog command group.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate or export catalog data",
	}

	var file string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and cross-check a catalog, printing any warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			opts, err := cliCtx.CatalogOptions()
			if err != nil {
				return err
			}
			path := file
			if path == "" {
				path = cliCtx.Config.Catalog.Path
			}
			cat, err := catalog.Load(catalog.SourceFor(path), opts...)
			if err != nil {
				return err
			}
			report := CatalogReport{
				Source:    cat.Source,
				Elements:  cat.Elements.Len(),
				Compounds: cat.Compounds.Len(),
				Rows:      cat.Table.Rows(),
				Cols:      cat.Table.Cols(),
				MaxMerge:  cat.Compounds.MaxSize(),
				Warnings:  []string{},
			}
			for _, w := range cat.Warnings() {
				report.Warnings = append(report.Warnings, w.String())
			}
			if report.MaxMerge > cliCtx.Config.Session.MaxMerge {
				report.Warnings = append(report.Warnings, fmt.Sprintf(
					"largest compound has %d atoms but session.max_merge is %d", report.MaxMerge, cliCtx.Config.Session.MaxMerge))
			}
			return PrintResult(cmd, report)
		},
	}
	validateCmd.Flags().StringVar(&file, "file", "", "catalog file to validate (default: configured catalog)")

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the embedded catalog YAML to stdout as a starting point for edits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := catalog.Embedded().Read()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(validateCmd, dumpCmd)
	return cmd
}

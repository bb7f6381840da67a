package main

import (
	"github.com/spf13/cobra"
)

var version = "1.0.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "docgen",
		Short: "Render dealership sale documents from JSON data bundles",
		Long: `docgen renders purchase contracts, deposit agreements, invoices and
pro-forma invoices from a JSON data bundle into a paginated PDF.

Company branding and document defaults are read from app.env, .env and the
environment (COMPANY_NAME, COMPANY_LOGO_PATH, DOCS_DEFAULT_TAX_RATE, ...).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newClausesCmd())
	return root
}

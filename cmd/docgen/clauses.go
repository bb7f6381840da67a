package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurpe/dealer-docs/internal/clauses"
	"github.com/nurpe/dealer-docs/internal/model"
)

func newClausesCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "clauses",
		Short: "Print the clause library for a contract kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := model.ParseDocumentKind(kind)
			if err != nil {
				return err
			}
			var list []clauses.Clause
			switch parsed {
			case model.KindPurchaseContract:
				list = clauses.Purchase()
			case model.KindDepositAgreement:
				list = clauses.DepositClauses()
			default:
				return fmt.Errorf("%s documents have no clause library", parsed)
			}
			out := cmd.OutOrStdout()
			for _, c := range list {
				if _, err := fmt.Fprintf(out, "%s\n%s\n\n", c.Heading(), c.Body); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "purchase", "purchase or deposit")
	return cmd
}

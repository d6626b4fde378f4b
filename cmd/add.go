package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/iexpense/internal/cli"
	"github.com/theirongolddev/iexpense/internal/model"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagType string

var addCmd = &cobra.Command{
	Use:   "add NAME AMOUNT",
	Short: "Add an expense",
	Example: `  iexpense add Coffee 3.50
  iexpense add "Office chair" 420 --type Business`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagType, "type", "t", model.CategoryPersonal, "Expense type (Personal or Business)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := model.ParseAmount(args[1])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	r := model.NewRecord(strings.TrimSpace(args[0]), canonicalType(flagType), amount)
	s.store.Add(r)
	s.log.Info("expense added",
		zap.String("id", r.ID),
		zap.String("name", r.Name),
		zap.String("category", r.Category),
		zap.String("amount", r.Amount.String()))

	fmt.Printf("  Added %s (%s) %s\n", r.Name, r.Category, cli.FormatAmount(r.Amount, s.cfg.General.Currency))
	return nil
}

// canonicalType title-cases the two known types so "business" and
// "Business" land in the same category. Anything else is kept verbatim.
func canonicalType(s string) string {
	for _, c := range []string{model.CategoryPersonal, model.CategoryBusiness} {
		if strings.EqualFold(s, c) {
			return c
		}
	}
	return s
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/iexpense/internal/cli"
	"github.com/theirongolddev/iexpense/internal/model"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List expenses with their display positions",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	mode, err := resolveMode(s.cfg)
	if err != nil {
		return err
	}

	currency := s.cfg.General.Currency
	var rows [][]string
	for r := range s.store.View(mode) {
		rows = append(rows, []string{
			strconv.Itoa(len(rows)),
			r.Name,
			r.Category,
			cli.AmountStyle(model.Tier(r.Amount)).Render(cli.FormatAmount(r.Amount, currency)),
		})
	}
	if len(rows) == 0 {
		fmt.Printf("\n  No %s expenses.\n", mode)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  %s", mode.Label())))
	fmt.Println()

	rows = append(rows,
		[]string{"---"},
		[]string{"", "Total", "", cli.FormatAmount(s.store.Total(mode), currency)},
	)
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:  []string{"#", "Name", "Type", "Amount"},
		Rows:     rows,
		LeftCols: 3,
	}))

	return nil
}

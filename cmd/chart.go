package cmd

import (
	"fmt"

	"github.com/theirongolddev/iexpense/internal/cli"
	"github.com/theirongolddev/iexpense/internal/expense"

	"github.com/spf13/cobra"
)

var flagTotal bool

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart segments for the current view mode",
	Long: "Show the chart segments: grouped by type when unfiltered, by name when\n" +
		"filtered. By default each group shows the amount of its first expense;\n" +
		"--total sums the group instead.",
	RunE: runChart,
}

func init() {
	chartCmd.Flags().BoolVar(&flagTotal, "total", false, "Sum amounts per group")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	mode, err := resolveMode(s.cfg)
	if err != nil {
		return err
	}
	agg, err := expense.ParseChartAggregate(s.cfg.Chart.Aggregate)
	if err != nil {
		return err
	}
	if flagTotal {
		agg = expense.AggregateTotal
	}

	segs := s.store.ChartSegments(mode, agg)
	if len(segs) == 0 {
		fmt.Printf("\n  No %s expenses to chart.\n", mode)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  Expenses by %s", mode.Label(), mode.GroupKey())))
	fmt.Println()

	rows := make([][]string, 0, len(segs))
	for _, seg := range segs {
		rows = append(rows, []string{
			seg.Label,
			cli.FormatAmount(seg.Amount, s.cfg.General.Currency),
			cli.FormatPercent(seg.Share),
			cli.RenderShareBar(seg.Share, 20),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   string(agg),
		Headers: []string{mode.GroupKey().String(), "Amount", "Share", ""},
		Rows:    rows,
	}))

	return nil
}

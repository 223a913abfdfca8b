package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/stitts-dev/dk-lineup/internal/generator"
	"github.com/stitts-dev/dk-lineup/pkg/logger"
)

var poolCommand = &cobra.Command{
	Use:   "pool",
	Short: "Show qualified pool sizes and the computed thresholds",
	RunE:  runPool,
}

func init() {
	poolCommand.Flags().StringVarP(&genSalaryCSV, "salary-csv", "s", "", "Path to DraftKings salary export CSV (required)")
	poolCommand.Flags().StringVar(&genOffenseURL, "offense-url", "", "URL of the season offense stats table (mutually exclusive with --offense-file)")
	poolCommand.Flags().StringVar(&genOffenseFile, "offense-file", "", "Path to a saved offense stats HTML page (mutually exclusive with --offense-url)")

	_ = poolCommand.MarkFlagRequired("salary-csv")

	rootCmd.AddCommand(poolCommand)
}

func runPool(cmd *cobra.Command, _ []string) error {
	log := logger.InitLogger("warn", true)

	pool, err := loadPool(log)
	if err != nil {
		return err
	}

	pools, err := generator.New().Qualify(pool, nil)
	if err != nil {
		return err
	}

	fmt.Printf("Pool: %d players, %d defenses\n\n", len(pool.Players), len(pool.Defenses))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Pool", "Qualified", "Thresholds"})
	for _, row := range []struct {
		name string
		qp   generator.QualifiedPool
	}{
		{"QB", pools.QB},
		{"RB", pools.RB},
		{"WR", pools.WR},
		{"TE", pools.TE},
		{"FLEX", pools.Flex},
		{"DST", pools.DST},
	} {
		table.Append([]string{row.name, fmt.Sprintf("%d", len(row.qp.Players)), formatThresholds(row.qp.Thresholds)})
	}
	table.Render()
	return nil
}

func formatThresholds(thresholds map[string]float64) string {
	if len(thresholds) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(thresholds))
	for k := range thresholds {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "  "
		}
		out += fmt.Sprintf("%s=%.2f", k, thresholds[k])
	}
	return out
}

package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stitts-dev/dk-lineup/internal/generator"
	"github.com/stitts-dev/dk-lineup/internal/ingest"
	"github.com/stitts-dev/dk-lineup/internal/scraper"
	"github.com/stitts-dev/dk-lineup/internal/types"
	"github.com/stitts-dev/dk-lineup/pkg/logger"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate random valid lineups from the qualified pool",
	RunE:  runGenerate,
}

var (
	genSalaryCSV   string
	genOffenseURL  string
	genOffenseFile string
	genCount       int
	genSeed        int64
	genVerbose     bool
)

func init() {
	generateCommand.Flags().StringVarP(&genSalaryCSV, "salary-csv", "s", "", "Path to DraftKings salary export CSV (required)")
	generateCommand.Flags().StringVar(&genOffenseURL, "offense-url", "", "URL of the season offense stats table (mutually exclusive with --offense-file)")
	generateCommand.Flags().StringVar(&genOffenseFile, "offense-file", "", "Path to a saved offense stats HTML page (mutually exclusive with --offense-url)")
	generateCommand.Flags().IntVarP(&genCount, "count", "n", 1, "Number of lineups to generate")
	generateCommand.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 seeds from the clock)")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print qualification details")

	_ = generateCommand.MarkFlagRequired("salary-csv")

	rootCmd.AddCommand(generateCommand)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	level := "warn"
	if genVerbose {
		level = "debug"
	}
	log := logger.InitLogger(level, true)

	pool, err := loadPool(log)
	if err != nil {
		return err
	}

	opts := []generator.Option{}
	if genSeed != 0 {
		opts = append(opts, generator.WithRand(rand.New(rand.NewSource(genSeed))))
	}
	gen := generator.New(opts...)

	for i := 0; i < genCount; i++ {
		lineup, err := gen.Generate(pool)
		if err != nil {
			return fmt.Errorf("lineup %d/%d: %w", i+1, genCount, err)
		}
		printLineup(lineup)
	}
	return nil
}

func loadPool(log *logrus.Logger) (types.PlayerPool, error) {
	if (genOffenseURL == "") == (genOffenseFile == "") {
		return types.PlayerPool{}, fmt.Errorf("exactly one of --offense-url or --offense-file is required")
	}

	salaries, err := ingest.LoadSalaryFile(genSalaryCSV)
	if err != nil {
		return types.PlayerPool{}, fmt.Errorf("failed to load salary file: %w", err)
	}

	var offense []types.PlayerRecord
	if genOffenseFile != "" {
		f, err := os.Open(genOffenseFile)
		if err != nil {
			return types.PlayerPool{}, fmt.Errorf("failed to open offense file: %w", err)
		}
		defer f.Close()
		offense, err = scraper.ParseOffenseTable(f)
		if err != nil {
			return types.PlayerPool{}, fmt.Errorf("failed to parse offense table: %w", err)
		}
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		offense, err = scraper.NewClient(0).FetchOffenseStats(ctx, genOffenseURL)
		if err != nil {
			return types.PlayerPool{}, fmt.Errorf("failed to fetch offense stats: %w", err)
		}
	}

	pool := ingest.MergePool(offense, salaries)
	if len(pool.Players) == 0 {
		log.Warnf("no offense players matched the salary file, check name formats")
	}
	return pool, nil
}

func printLineup(lineup *types.Lineup) {
	fmt.Printf("\nLineup %s\n", lineup.ID)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Slot", "Player", "Team", "Salary", "VBD"})

	var totalSalary float64
	for _, slot := range lineup.Slots {
		salary := "-"
		if slot.Player.Salary != nil {
			salary = fmt.Sprintf("%.0f", *slot.Player.Salary)
			totalSalary += *slot.Player.Salary
		}
		vbd := "-"
		if v, ok := slot.Player.Stat(types.StatVBD); ok {
			vbd = fmt.Sprintf("%.1f", v)
		}
		table.Append([]string{slot.Slot, slot.Player.Name, slot.Player.Team, salary, vbd})
	}
	table.SetFooter([]string{"", "", "Total", fmt.Sprintf("%.0f", totalSalary), ""})
	table.Render()
}

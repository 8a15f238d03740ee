package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johntlangton/chess/internal/worker"
)

var analyzeWorkers int

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Count available moves for a file of positions",
	Long: `Analyze reads one FEN position per line from the given file and
reports, for each position, how many moves the side to move has. Blank
lines and lines starting with '#' are skipped. Positions are analyzed
in parallel; results print in input order.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "worker count (default: from config, else number of CPUs)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	workers := analyzeWorkers
	if workers <= 0 {
		workers = cfg.GetInt(cfgKeyWorkers)
	}

	positions, err := readPositions(args[0])
	if err != nil {
		return err
	}

	pool := worker.NewPool(worker.Analyze, worker.WithWorkers(workers))
	pool.Start()

	go func() {
		for i, fen := range positions {
			pool.Submit(worker.Item{FEN: fen, Index: i})
		}
		pool.Close()
	}()

	results := make([]worker.Result, 0, len(positions))
	for res := range pool.Results() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	var failed int
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "position %d: %v\n", res.Index+1, res.Err)
			failed++
			continue
		}
		fmt.Printf("%s: %s to move, %d moves\n", res.FEN, res.ToMove, res.MoveCount)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d positions failed", failed, len(positions))
	}
	return nil
}

// readPositions reads FEN strings from a file, one per line, skipping
// blank lines and '#' comments.
func readPositions(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var positions []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		positions = append(positions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return positions, nil
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"finratio/pkg/core/benchmark"
	"finratio/pkg/core/engine"
	"finratio/pkg/core/snapshot"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	inputPath := flag.String("input", "-", "snapshot JSON file, or - for stdin")
	paramsPath := flag.String("params", "", "optional HJSON file with analysis parameters")
	benchmarksPath := flag.String("benchmarks", "", "optional YAML file with industry benchmark values")
	wacc := flag.Float64("wacc", 0, "override the discount rate used for EVA")
	flag.Parse()

	runID := uuid.New().String()
	log.SetPrefix(fmt.Sprintf("[%s] ", runID))

	if err := run(*inputPath, *paramsPath, *benchmarksPath, *wacc); err != nil {
		log.Fatalf("analysis failed: %v", err)
	}
}

func run(inputPath, paramsPath, benchmarksPath string, wacc float64) error {
	data, err := readInput(inputPath)
	if err != nil {
		return err
	}

	snap, err := snapshot.FromJSON(data)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	params := engine.DefaultParams()
	if paramsPath != "" {
		params, err = engine.LoadParams(paramsPath)
		if err != nil {
			return err
		}
	}
	params = params.FromEnv()
	if wacc > 0 {
		params.WACC = wacc
	}

	var table benchmark.Table
	if benchmarksPath != "" {
		table, err = benchmark.Load(benchmarksPath)
		if err != nil {
			return err
		}
	}

	report := engine.AnalyzeWithBenchmarks(snap, params, table)
	log.Printf("analysis complete: health %s, investment grade %s",
		report.Summary.HealthStatus, report.Summary.InvestmentGrade.Letter)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return data, nil
}

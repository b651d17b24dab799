package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tapetrail/tapetrail/internal/config"
	"github.com/tapetrail/tapetrail/pkg/engine"
	"github.com/tapetrail/tapetrail/pkg/records"
	"github.com/tapetrail/tapetrail/pkg/types"
)

var runFlags struct {
	showsDir       string
	recordingsDir  string
	collections    string
	outputDir      string
	start          string
	end            string
	limit          int
	venueThreshold float64
}

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full reconciliation pipeline",
	Long: `Run the full pipeline: load raw show and recording dumps, normalize
dates and venues, match recordings to shows, resolve collections, and
write enriched records to the output directory.

Examples:
  tapetrail run --shows-dir data/shows --recordings-dir data/recordings --output-dir out
  tapetrail run --shows-dir data/shows --recordings-dir data/recordings \
      --collections collections.yaml --start 1977-01-01 --end 1977-12-31 --output-dir out`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.showsDir, "shows-dir", "", "directory of raw show JSON records")
	runCmd.Flags().StringVar(&runFlags.recordingsDir, "recordings-dir", "", "directory of raw recording JSON records")
	runCmd.Flags().StringVar(&runFlags.collections, "collections", "", "collection definitions YAML file")
	runCmd.Flags().StringVar(&runFlags.outputDir, "output-dir", "out", "directory for enriched output")
	runCmd.Flags().StringVar(&runFlags.start, "start", "", "only process records on or after this date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runFlags.end, "end", "", "only process records on or before this date (YYYY-MM-DD)")
	runCmd.Flags().IntVar(&runFlags.limit, "limit", 0, "cap input records per kind (0 = no cap)")
	runCmd.Flags().Float64Var(&runFlags.venueThreshold, "venue-threshold", 0, "venue similarity threshold override")

	bindFlag(runCmd, config.KeyShowsDir, "shows-dir")
	bindFlag(runCmd, config.KeyRecordingsDir, "recordings-dir")
	bindFlag(runCmd, config.KeyCollections, "collections")
	bindFlag(runCmd, config.KeyOutputDir, "output-dir")
	bindFlag(runCmd, config.KeyVenueThreshold, "venue-threshold")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("Failed to bind %s flag: %v", flag, err))
	}
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	result, err := executeRun(cmd)
	if err != nil {
		return err
	}

	store := records.NewStore(viper.GetString(config.KeyOutputDir))
	if err := store.WriteResult(result); err != nil {
		return err
	}

	printSummary(cmd, result)
	return nil
}

// executeRun loads inputs and runs the engine; shared with validate.
func executeRun(cmd *cobra.Command) (*engine.Result, error) {
	inputs, err := loadInputs()
	if err != nil {
		return nil, err
	}

	var opts []engine.Option
	if threshold := config.GetFloat64(config.KeyVenueThreshold); threshold > 0 {
		opts = append(opts, engine.WithVenueThreshold(threshold))
	}
	if runFlags.start != "" || runFlags.end != "" {
		opts = append(opts, engine.WithDateRange(types.Date(runFlags.start), types.Date(runFlags.end)))
	}
	if runFlags.limit > 0 {
		opts = append(opts, engine.WithLimit(runFlags.limit))
	}

	eng, err := engine.New(opts...)
	if err != nil {
		return nil, err
	}
	return eng.Run(cmd.Context(), inputs)
}

func loadInputs() (engine.Inputs, error) {
	var inputs engine.Inputs
	var err error

	showsDir := viper.GetString(config.KeyShowsDir)
	recordingsDir := viper.GetString(config.KeyRecordingsDir)

	if showsDir != "" {
		if inputs.Shows, err = records.LoadShowsDir(showsDir); err != nil {
			return inputs, err
		}
	}
	if recordingsDir != "" {
		if inputs.Recordings, err = records.LoadRecordingsDir(recordingsDir); err != nil {
			return inputs, err
		}
	}
	if path := viper.GetString(config.KeyCollections); path != "" {
		if inputs.Collections, err = records.LoadCollections(path); err != nil {
			return inputs, err
		}
	}
	return inputs, nil
}

func printSummary(cmd *cobra.Command, result *engine.Result) {
	rows := [][]string{
		{"Shows processed", strconv.Itoa(result.Stats.ShowsProcessed)},
		{"Recordings processed", strconv.Itoa(result.Stats.RecordingsProcessed)},
		{"Shows with recordings", strconv.Itoa(result.Stats.ShowsMatched)},
		{"Canonical venues", strconv.Itoa(result.Stats.VenuesCanonical)},
		{"Collections resolved", strconv.Itoa(len(result.Collections))},
		{"Unmatched recordings", strconv.Itoa(len(result.Report.UnmatchedRecordings))},
		{"Date parse failures", strconv.Itoa(len(result.Report.DateParseFailures))},
		{"Duration", result.Metadata.Duration.String()},
	}
	cmd.Println(renderTable(
		[]string{"Metric", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
	cmd.Println(result.Summary())
}

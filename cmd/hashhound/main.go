package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MKlolbullen/hashhound/internal/analysis"
	"github.com/MKlolbullen/hashhound/internal/config"
	"github.com/MKlolbullen/hashhound/internal/credstore"
	"github.com/MKlolbullen/hashhound/internal/dump"
	"github.com/MKlolbullen/hashhound/internal/report"
)

// options is the resolved CLI input handed to the engine; nothing below
// main reads flags or ambient process state.
type options struct {
	File       string
	Output     string
	Engagement string
	JSON       bool
	Store      bool
}

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "hashhound",
		Short: "Detect accounts sharing a password in an NT hash dump",
		Long: `hashhound analyzes a secretsdump-style credential dump
(username:RID:LM_hash:NT_hash:::) and reports which accounts share an
identical NT hash, a direct lateral-movement risk. Hashes are treated as
opaque strings; no cracking is attempted.`,
		Example: `  hashhound -f hashes.txt
  hashhound -f hashes.txt -o results.csv
  hashhound -f hashes.txt --store --engagement acme-corp`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "path to the NT hash dump file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write a CSV export to this path")
	cmd.Flags().StringVar(&opts.Engagement, "engagement", "", "engagement name for --store (default from config)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "emit the report as JSON instead of a table")
	cmd.Flags().BoolVar(&opts.Store, "store", false, "import parsed records into the credential store")
	cmd.MarkFlagRequired("file")

	return cmd
}

func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Engagement == "" {
		opts.Engagement = cfg.Engagement
	}

	if !opts.JSON {
		fmt.Printf("Analyzing NT password hash dump: %s\n\n", opts.File)
	}

	records, stats, err := dump.ParseFile(opts.File)
	if err != nil {
		return err
	}
	rep := analysis.BuildReport(opts.File, records, stats)

	if opts.JSON {
		if err := report.WriteJSON(os.Stdout, rep); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	} else {
		report.WriteTable(os.Stdout, rep, cfg.DisplayCap)
	}

	if opts.Output != "" {
		if err := report.WriteCSVFile(opts.Output, rep); err != nil {
			return err
		}
		if !opts.JSON {
			fmt.Printf("\nResults saved to %s\n", opts.Output)
		}
	}

	if opts.Store {
		store := credstore.New(cfg.StoreRoot)
		n, err := store.ImportRecords(opts.Engagement, opts.File, records)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"engagement": opts.Engagement,
			"saved":      n,
		}).Info("imported credentials")
	}
	return nil
}

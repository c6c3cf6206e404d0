package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go-bikeshare/internal/model"
	"go-bikeshare/internal/pipeline"
	"go-bikeshare/internal/shell"
)

var (
	statsCity   string
	statsMonth  string
	statsDay    string
	statsFormat string
	statsExport string
	statsRows   bool
)

var statsCommand = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics for one city, month and day",
	Example: `  bikeshare stats --city chicago --month june --day all
  bikeshare stats --city "new york city" --format json --export report.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(statsFormat); err != nil {
			return err
		}
		criteria, err := model.NewFilterCriteria(statsCity, statsMonth, statsDay)
		if err != nil {
			return err
		}

		conf := loadConfig(cmd)
		closeStore := openStore(conf)
		defer closeStore()

		report, table, err := newRunner(conf).Run(cmd.Context(), criteria)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch statsFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		default:
			shell.RenderReport(out, report)
		}

		if statsExport != "" || statsRows {
			em := pipeline.NewExportManager(report.RunID, conf.ExportDir)
			if statsExport != "" {
				res, err := em.ExportReport(report, statsExport)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "report written to %s\n", res.Path)
			}
			if statsRows {
				res, err := em.ExportRows(table, pipeline.DefaultRowsName(criteria))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%d rows written to %s\n", res.RecordCount, res.Path)
			}
		}
		return nil
	},
}

// checkFormat rejects output formats other than text and json
func checkFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("unknown format %q (text, json)", format)
}

func init() {
	statsCommand.Flags().StringVar(&statsCity, "city", "", "City (chicago, new york city, washington)")
	statsCommand.Flags().StringVar(&statsMonth, "month", model.All, "Month name or all")
	statsCommand.Flags().StringVar(&statsDay, "day", model.All, "Day of week or all")
	statsCommand.Flags().StringVarP(&statsFormat, "format", "f", "text", "Output format: text, json")
	statsCommand.Flags().StringVar(&statsExport, "export", "", "Also export the report to this file (.csv or .json)")
	statsCommand.Flags().BoolVar(&statsRows, "export-rows", false, "Also export the filtered rows as CSV")
	_ = statsCommand.MarkFlagRequired("city")
}

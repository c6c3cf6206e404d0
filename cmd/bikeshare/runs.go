package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go-bikeshare/internal/store"
)

var runsCommand = &cobra.Command{
	Use:   "runs",
	Short: "List previous analysis runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := loadConfig(cmd)
		closeStore := openStore(conf)
		defer closeStore()
		if !store.Ready() {
			return errors.New("run history is not available")
		}

		runs, err := store.ListRuns()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCITY\tMONTH\tDAY\tSTATUS\tROWS\tCREATED")
		for _, r := range runs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n", r.ID, r.City, r.Month, r.Day, r.Status, r.RowCount, r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return tw.Flush()
	},
}

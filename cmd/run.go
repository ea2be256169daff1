package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"bulk-seeder/core/report"

	"github.com/spf13/cobra"
)

var (
	lightFlag        bool
	jsonFlag         bool
	uploadReportFlag bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Seed the databases from the plan",
	Long: `Runs every unit of the plan in creation order and prints the report.
Units fail independently; the command exits with an error when any unit failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), uploadReportFlag)
		if err != nil {
			return err
		}
		defer rt.Close(cmd.Context())

		run, err := rt.service.InsertData(cmd.Context())
		if err != nil {
			return err
		}

		if jsonFlag {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(run); err != nil {
				return err
			}
		} else {
			opts := report.Options{
				Light: lightFlag || rt.cfg.Seed.LightBorder,
				Color: report.ColorEnabled(os.Stdout),
			}
			if err := rt.service.ShowSummary(os.Stdout, opts); err != nil {
				return err
			}
		}

		if totals := run.Log.Totals(); totals.Failed > 0 {
			return fmt.Errorf("%d of %d unit(s) failed", totals.Failed, totals.Units)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&lightFlag, "light", false, "render the report without box-drawing borders")
	runCmd.Flags().BoolVar(&jsonFlag, "json", false, "print the audit log as JSON instead of a table")
	runCmd.Flags().BoolVar(&uploadReportFlag, "upload-report", false, "store the run report in the storage bucket")
	RootCmd.AddCommand(runCmd)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"bulk-seeder/feature/seeding"

	"github.com/spf13/cobra"
)

var checkJSONFlag bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the plan without inserting anything",
	Long: `Compiles every schema, reads every source selected for the environment,
compares record fields with SQL table columns and lints reference ordering.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer rt.Close(cmd.Context())

		rep, err := rt.service.Check(cmd.Context())
		if err != nil {
			return err
		}

		if checkJSONFlag {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
		} else {
			printCheck(rep)
		}

		if !rep.OK {
			return fmt.Errorf("plan check failed")
		}
		return nil
	},
}

func printCheck(rep *seeding.CheckReport) {
	for _, u := range rep.Units {
		status := "OK"
		switch {
		case u.Skipped:
			status = "SKIP"
		case !u.OK():
			status = "FAIL"
		}
		fmt.Printf("%-4s  %3d  %-24s %-12s %d record(s)\n", status, u.CreationOrder, u.Entity, u.Connection, u.Records)
		for _, msg := range []string{u.SchemaError, u.SourceError, u.BackendError} {
			if msg != "" {
				fmt.Printf("      %s\n", msg)
			}
		}
		if len(u.MissingColumns) > 0 {
			fmt.Printf("      missing columns: %s\n", strings.Join(u.MissingColumns, ", "))
		}
	}
	for _, issue := range rep.Issues {
		fmt.Printf("REF   %s\n", issue)
	}
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSONFlag, "json", false, "print the check report as JSON")
	RootCmd.AddCommand(checkCmd)
}

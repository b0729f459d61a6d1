package watertrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			report, err := st.CheckIntegrity()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Events checked: %d\n", report.TotalEvents)
			fmt.Fprintf(cmd.OutOrStdout(), "Malformed dates: %d\n", report.MalformedDates)
			fmt.Fprintf(cmd.OutOrStdout(), "Malformed timestamps: %d\n", report.MalformedTimestamps)
			fmt.Fprintf(cmd.OutOrStdout(), "Date drift rows: %d\n", report.DateDrift)
			if report.MalformedDates > 0 || report.MalformedTimestamps > 0 || report.DateDrift > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

package watertrack

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

var summaryDays int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the trailing daily totals, zero-filled",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			user := resolveUser(st)
			events, err := st.ListAll(user)
			if err != nil {
				return err
			}
			days, err := hydration.TrailingSummary(events, time.Now(), summaryDays)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Last %d days for %s\n", summaryDays, user)
			fmt.Fprintln(out, "DATE\t\tTOTAL\tENTRIES")
			for _, d := range days {
				fmt.Fprintf(out, "%s\t%d ml\t%d\n", d.Date, d.TotalMl, d.EntryCount)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().IntVar(&summaryDays, "days", 7, "Trailing window size in days")
}

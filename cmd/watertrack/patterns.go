package watertrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show average intake by weekday and hour of day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			user := resolveUser(st)
			events, err := st.ListAll(user)
			if err != nil {
				return err
			}
			profile := hydration.Patterns(events)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Patterns for %s (entire history)\n\n", user)
			fmt.Fprintln(out, "WEEKDAY\t\tMEAN\tENTRIES")
			for _, b := range profile.ByWeekday {
				fmt.Fprintf(out, "%s\t%s\t%d\n", b.Label, formatMean(b), b.Entries)
			}
			fmt.Fprintln(out, "\nHOUR\tMEAN\tENTRIES")
			for _, b := range profile.ByHour {
				if b.Entries == 0 {
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%d\n", b.Label, formatMean(b), b.Entries)
			}
			return nil
		})
	},
}

// formatMean keeps the no-data distinction visible: an empty bucket prints
// as such instead of masquerading as 0 ml.
func formatMean(b hydration.PatternBucket) string {
	if b.MeanMl == nil {
		return "no data"
	}
	return fmt.Sprintf("%.0f ml", *b.MeanMl)
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}

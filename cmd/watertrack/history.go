package watertrack

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/model"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

var (
	historyFrom string
	historyTo   string
	historyLast int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged intakes with range totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyLast > 0 && (historyFrom != "" || historyTo != "") {
			return fmt.Errorf("--last cannot be combined with --from or --to")
		}
		return withStore(func(st *store.Store) error {
			user := resolveUser(st)

			var (
				events []model.IntakeEvent
				err    error
			)
			if historyLast > 0 {
				events, err = st.Recent(user, historyLast)
			} else {
				to := historyTo
				if to == "" {
					to = time.Now().Format(hydration.DateLayout)
				}
				from := historyFrom
				if from == "" {
					t, perr := time.ParseInLocation(hydration.DateLayout, to, time.Local)
					if perr != nil {
						return fmt.Errorf("invalid --to %q (expected YYYY-MM-DD)", historyTo)
					}
					from = t.AddDate(0, 0, -7).Format(hydration.DateLayout)
				}
				events, err = st.ListRange(user, from, to)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No entries found.")
				return nil
			}
			fmt.Fprintln(out, "DATE\t\tTIME\tAMOUNT")
			var totalMl int
			for _, e := range events {
				totalMl += e.AmountMl
				fmt.Fprintf(out, "%s\t%s\t%d ml\n", e.Date, e.LoggedAt.Format("15:04"), e.AmountMl)
			}
			fmt.Fprintf(out, "\nTotal: %d ml | Average per entry: %.1f ml\n", totalMl, float64(totalMl)/float64(len(events)))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historyFrom, "from", "", "Start date YYYY-MM-DD (default 7 days before --to)")
	historyCmd.Flags().StringVar(&historyTo, "to", "", "End date YYYY-MM-DD (default today)")
	historyCmd.Flags().IntVar(&historyLast, "last", 0, "Show the N most recent entries instead of a date range")
}

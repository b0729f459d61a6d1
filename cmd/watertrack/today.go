package watertrack

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := todayDate
		if date == "" {
			date = time.Now().Format(hydration.DateLayout)
		} else if _, err := time.Parse(hydration.DateLayout, date); err != nil {
			return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", todayDate)
		}
		return withStore(func(st *store.Store) error {
			user := resolveUser(st)
			events, err := st.ListAll(user)
			if err != nil {
				return err
			}
			total := hydration.DailyTotalFor(events, date)
			goalMl, err := st.CurrentGoalMl(user, date)
			if err != nil {
				return err
			}
			progress, err := hydration.Progress(total.TotalMl, goalMl)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s (user %s)\n", date, user)
			fmt.Fprintf(out, "Intake: %d ml over %d entries\n", total.TotalMl, total.EntryCount)
			fmt.Fprintf(out, "Goal: %d ml | Remaining: %d ml | %d%%\n", progress.GoalMl, progress.RemainingMl, int(progress.ProgressFraction*100))

			bar := progressbar.NewOptions(progress.GoalMl,
				progressbar.OptionSetWriter(out),
				progressbar.OptionSetDescription("hydration"),
				progressbar.OptionSetWidth(30),
				progressbar.OptionSetPredictTime(false),
				progressbar.OptionSetRenderBlankState(true),
			)
			shown := total.TotalMl
			if shown > progress.GoalMl {
				shown = progress.GoalMl
			}
			_ = bar.Set(shown)
			fmt.Fprintln(out)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}

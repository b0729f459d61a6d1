package watertrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the daily hydration goal",
}

var (
	goalMl   int
	goalDate string
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the daily goal with an effective date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			user := resolveUser(st)
			in := store.SetGoalInput{UserID: user, GoalMl: goalMl, EffectiveDate: goalDate}
			if err := st.SetGoal(in); err != nil {
				return err
			}
			effective := goalDate
			if effective == "" {
				effective = "today"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set goal %d ml for %s effective %s\n", goalMl, user, effective)
			return nil
		})
	},
}

var currentGoalDate string

var goalCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the goal in effect",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			user := resolveUser(st)
			goal, err := st.CurrentGoalMl(user, currentGoalDate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal for %s: %d ml\n", user, goal)
			return nil
		})
	},
}

var goalHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show goal history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			user := resolveUser(st)
			goals, err := st.GoalHistory(user)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(goals) == 0 {
				fmt.Fprintln(out, "No goals set; using the default.")
				return nil
			}
			fmt.Fprintln(out, "EFFECTIVE\tGOAL")
			for _, g := range goals {
				fmt.Fprintf(out, "%s\t%d ml\n", g.EffectiveDate, g.GoalMl)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalCurrentCmd, goalHistoryCmd)

	goalSetCmd.Flags().IntVar(&goalMl, "ml", 0, "Daily goal in millilitres")
	goalSetCmd.Flags().StringVar(&goalDate, "effective-date", "", "Effective date YYYY-MM-DD (default today)")
	_ = goalSetCmd.MarkFlagRequired("ml")

	goalCurrentCmd.Flags().StringVar(&currentGoalDate, "date", "", "Resolve goal at date YYYY-MM-DD (default today)")
}

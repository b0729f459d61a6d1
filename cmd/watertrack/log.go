package watertrack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log <amount-ml>",
	Short: "Log a water intake in millilitres",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amountMl, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid amount %q, expected millilitres as an integer", args[0])
		}
		return withStore(func(st *store.Store) error {
			user := resolveUser(st)
			event, err := st.LogIntake(store.LogIntakeInput{UserID: user, AmountMl: amountMl})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d ml for %s on %s\n", event.AmountMl, user, event.Date)

			// Everything past the append is advisory and must not fail the
			// command: the intake is already stored.
			events, err := st.ListAll(user)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "(could not load today's total: %v)\n", err)
				return nil
			}
			total := hydration.DailyTotalFor(events, event.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Today's total: %d ml over %d entries\n", total.TotalMl, total.EntryCount)

			goalMl, err := st.CurrentGoalMl(user, event.Date)
			if err != nil {
				goalMl = hydration.DefaultGoalMl
			}
			gen := newGenerator(st, goalMl)
			msg, err := gen.Feedback(cmd.Context(), total.TotalMl)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "(feedback unavailable: %v)\n", err)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}

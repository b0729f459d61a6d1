package watertrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local watertrack database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		return withStore(func(*store.Store) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized watertrack database at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

package watertrack

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/server"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			logger := newLogger()
			srv := server.New(st, newGenerator(st, hydration.DefaultGoalMl), logger)

			logger.Info("serving dashboard API", "addr", serveAddr)
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", serveAddr)
			return http.ListenAndServe(serveAddr, srv.Handler())
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}

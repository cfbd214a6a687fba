package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizzical/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz HTTP API",
	Long:  "Exposes quiz generation and hints over HTTP for non-terminal frontends.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		log := stderrLogger()
		gen, hints, err := buildServices(cmd, log)
		if err != nil {
			return err
		}

		srv := server.New(addr, gen, hints, log)
		return srv.Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("addr", server.DefaultAddr, "Listen address")
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/sentinel/internal/wire"
)

// ServeCmd returns the serve command.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _ := cmd.Flags().GetString("host")
			port, _ := cmd.Flags().GetInt("port")

			cfg := wire.Config()
			if host == "" {
				host = cfg.Server.Host
			}
			if port == 0 {
				port = cfg.Server.Port
			}

			addr := fmt.Sprintf("%s:%d", host, port)
			fmt.Printf("Starting web dashboard on http://%s\n", addr)
			fmt.Println("Press Ctrl+C to stop the server")

			return wire.Server().ListenAndServe(addr)
		},
	}

	cmd.Flags().String("host", "", "Host to bind (default from config)")
	cmd.Flags().Int("port", 0, "Port to listen on (default from config)")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHealthCmd создаёт CLI-команду проверки доступности сервера.
//
// Команда выполняет GET /health и выводит статус и имя сервиса.
//
// Пример использования:
//
//	userhubctl health
func NewHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "health",
		Short:        "Проверить доступность сервера",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)

			resp, err := c.Health()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "status=%s service=%s\n", resp.Status, resp.Service)
			return nil
		},
	}
}

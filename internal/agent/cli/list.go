package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCmd создаёт CLI-команду получения списка всех пользователей.
//
// Команда выполняет GET /api/v1/users и выводит пользователей построчно
// в порядке, возвращённом сервером (created_at по убыванию).
//
// Пример использования:
//
//	userhubctl list
func NewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "Список всех пользователей",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)

			resp, err := c.ListUsers()
			if err != nil {
				return err
			}

			if len(resp.Data) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no users")
				return nil
			}

			for _, u := range resp.Data {
				fmt.Fprintf(
					cmd.OutOrStdout(),
					"id=%d email=%s name=%q created_at=%s updated_at=%s\n",
					u.ID, u.Email, u.Name,
					u.CreatedAt.Format("2006-01-02 15:04:05"),
					u.UpdatedAt.Format("2006-01-02 15:04:05"),
				)
			}
			return nil
		},
	}
}

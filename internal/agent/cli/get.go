package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGetCmd создаёт CLI-команду получения одного пользователя по id.
//
// Обязательные флаги:
//
//	--id — идентификатор пользователя (положительное целое)
//
// Пример использования:
//
//	userhubctl get --id 1
func NewGetCmd(app *App) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:          "get",
		Short:        "Получить пользователя по id",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id <= 0 {
				return fmt.Errorf("--id must be a positive integer")
			}

			c := NewAPIClient(app.ServerURL)

			resp, err := c.GetUser(id)
			if err != nil {
				return err
			}

			u := resp.Data
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"id=%d email=%s name=%q created_at=%s updated_at=%s\n",
				u.ID, u.Email, u.Name,
				u.CreatedAt.Format("2006-01-02 15:04:05"),
				u.UpdatedAt.Format("2006-01-02 15:04:05"),
			)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "user id")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCmd создаёт CLI-команду удаления пользователя по id.
//
// Обязательные флаги:
//
//	--id — идентификатор пользователя
//
// Пример использования:
//
//	userhubctl delete --id 1
func NewDeleteCmd(app *App) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:          "delete",
		Short:        "Удалить пользователя по id",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id <= 0 {
				return fmt.Errorf("--id must be a positive integer")
			}

			c := NewAPIClient(app.ServerURL)

			resp, err := c.DeleteUser(id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", resp.Message)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "user id")

	return cmd
}

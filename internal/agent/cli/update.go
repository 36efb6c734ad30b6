package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-userhub/internal/shared/models"
)

// NewUpdateCmd создаёт CLI-команду обновления пользователя (partial update).
//
// На сервер передаются только те поля, чьи флаги были заданы:
// не переданное поле сохраняет прежнее значение.
//
// Обязательные флаги:
//
//	--id — идентификатор пользователя
//
// Необязательные флаги (нужен хотя бы один):
//
//	--email — новый email
//	--name  — новое имя
//
// Примеры использования:
//
//	# поменять только имя, email останется прежним
//	userhubctl update --id 1 --name "Ann Lee"
//
//	# поменять только email
//	userhubctl update --id 1 --email ann.lee@example.com
func NewUpdateCmd(app *App) *cobra.Command {
	var (
		id    int64
		email string
		name  string
	)

	cmd := &cobra.Command{
		Use:          "update",
		Short:        "Обновить пользователя (partial update)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id <= 0 {
				return fmt.Errorf("--id must be a positive integer")
			}

			var req sharedModels.UpdateUserRequest
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if req.Email == nil && req.Name == nil {
				return fmt.Errorf("at least one of --email or --name is required")
			}

			c := NewAPIClient(app.ServerURL)

			resp, err := c.UpdateUser(id, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"updated user %d: email=%s name=%q\n",
				resp.Data.ID, resp.Data.Email, resp.Data.Name,
			)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "user id")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&name, "name", "", "new name")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-userhub/internal/shared/models"
)

// NewCreateCmd создаёт CLI-команду создания нового пользователя на сервере.
//
// Сервер валидирует email (формат) и name (2–100 символов),
// id и оба timestamp назначает база.
//
// Обязательные флаги:
//
//	--email — email пользователя (уникальный)
//	--name  — имя пользователя
//
// Примеры использования:
//
//	userhubctl create --email ann@example.com --name "Ann Smith"
//
// В случае успешного выполнения команда выводит строку вида:
// "created user <id> (<email>)".
func NewCreateCmd(app *App) *cobra.Command {
	var (
		email string
		name  string
	)

	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Создать нового пользователя",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || name == "" {
				return fmt.Errorf("--email and --name are required")
			}

			c := NewAPIClient(app.ServerURL)

			resp, err := c.CreateUser(sharedModels.CreateUserRequest{
				Email: email,
				Name:  name,
			})
			if err != nil {
				return err
			}
			if resp.Data.ID == 0 {
				return fmt.Errorf("server returned empty id on create")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s)\n", resp.Data.ID, resp.Data.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&name, "name", "", "user name")

	return cmd
}

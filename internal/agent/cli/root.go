// Package cli реализует командный интерфейс (CLI) клиентского приложения userhubctl.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера userhub (например, "http://127.0.0.1:8080").
	ServerURL string
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:8080",
	}

	cmd := &cobra.Command{
		Use:   "userhubctl",
		Short: "userhubctl — CLI-клиент каталога пользователей userhub",
		Long: `userhubctl.

Команды:
  health   Проверка доступности сервера
  list     Список всех пользователей
  get      Получить пользователя по id
  create   Создать пользователя
  update   Обновить пользователя (partial update)
  delete   Удалить пользователя по id
  version  Версия и дата сборки

Примеры:

Создание пользователя:
  userhubctl create --email ann@example.com --name "Ann Smith"

Список пользователей:
  userhubctl list

Обновление (только name, email не меняется):
  userhubctl update --id 1 --name "Ann Lee"

Удаление:
  userhubctl delete --id 1
`,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:8080", "server base URL")

	cmd.AddCommand(NewHealthCmd(app))
	cmd.AddCommand(NewListCmd(app))
	cmd.AddCommand(NewGetCmd(app))
	cmd.AddCommand(NewCreateCmd(app))
	cmd.AddCommand(NewUpdateCmd(app))
	cmd.AddCommand(NewDeleteCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

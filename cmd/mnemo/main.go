// Mnemo CLI — инструмент командной строки для генерации учебных
// треков через HTTP API.
//
// Использование:
//
//	mnemo [--api-url URL] [--json] <command> <subcommand> [flags]
//
// Команды:
//
//	models  Каталог AI-моделей
//	genres  Каталог музыкальных жанров
//	music   Генерация треков и статусы
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Mnemo/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var apiURL string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "mnemo",
		Short:         "Mnemo CLI — learning songs generator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8000", "API server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *cli.Client { return cli.NewClient(apiURL) }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewModelsCmd(clientFn, outputFn),
		cli.NewGenresCmd(clientFn, outputFn),
		cli.NewMusicCmd(clientFn, outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

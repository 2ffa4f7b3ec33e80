package cli

import (
	"github.com/spf13/cobra"
)

// NewModelsCmd создаёт группу команд для каталога моделей.
func NewModelsCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Inspect available AI models",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available models",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			models, err := client.ListModels()
			if err != nil {
				return err
			}

			headers := []string{"ID", "PROVIDER", "TYPE"}
			rows := make([][]string, len(models))
			for i, m := range models {
				rows[i] = []string{m.ID, m.Provider, m.Type}
			}

			out.Print(headers, rows, models)
			return nil
		},
	})

	return cmd
}

// NewGenresCmd создаёт группу команд для каталога жанров.
func NewGenresCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genres",
		Short: "Inspect supported music genres",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List supported genres",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			genres, err := client.ListGenres()
			if err != nil {
				return err
			}

			headers := []string{"ID", "NAME", "DESCRIPTION"}
			rows := make([][]string, len(genres))
			for i, g := range genres {
				rows[i] = []string{g.ID, g.Name, g.Description}
			}

			out.Print(headers, rows, genres)
			return nil
		},
	})

	return cmd
}

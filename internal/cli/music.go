package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewMusicCmd создаёт группу команд для генерации музыки.
func NewMusicCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "music",
		Short: "Generate learning tracks and check their status",
	}

	cmd.AddCommand(
		newMusicGenerateCmd(clientFn, outputFn),
		newMusicTaskCmd(clientFn, outputFn),
		newMusicTrackCmd(clientFn, outputFn),
	)

	return cmd
}

func newMusicGenerateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var (
		genre        string
		topic        string
		duration     int
		customPrompt string
		testMode     bool
		showLyrics   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a learning track",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			result, err := client.GenerateMusic(MusicGenerationRequest{
				Genre:        genre,
				Duration:     duration,
				Topic:        topic,
				CustomPrompt: customPrompt,
				TestMode:     testMode,
			})
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Track generated: %s", result.Title))
			out.Print(
				[]string{"TRACK", "TASK", "STATUS", "URL"},
				[][]string{{result.TrackID, result.TaskID, result.Status, result.OutputURL}},
				result,
			)
			if showLyrics {
				out.Lyrics(result.Lyrics)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Music genre (required, see 'mnemo genres list')")
	cmd.Flags().StringVar(&topic, "topic", "", "Learning topic (required)")
	cmd.Flags().IntVar(&duration, "duration", 60, "Track duration in seconds")
	cmd.Flags().StringVar(&customPrompt, "prompt", "", "Custom composition prompt")
	cmd.Flags().BoolVar(&testMode, "test-mode", false, "Use provider mock responses")
	cmd.Flags().BoolVar(&showLyrics, "lyrics", false, "Print generated lyrics")
	cmd.MarkFlagRequired("genre")
	cmd.MarkFlagRequired("topic")

	return cmd
}

func newMusicTaskCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "task ID",
		Short: "Show composition task status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			task, err := client.GetTask(args[0])
			if err != nil {
				return err
			}

			out.Print(
				[]string{"TASK", "STATUS", "TRACK", "URL"},
				[][]string{{task.TaskID, task.Status, task.TrackID, task.TrackURL}},
				task,
			)
			return nil
		},
	}
}

func newMusicTrackCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var showLyrics bool

	cmd := &cobra.Command{
		Use:   "track ID",
		Short: "Show track status and lyrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			track, err := client.GetTrack(args[0])
			if err != nil {
				return err
			}

			out.Print(
				[]string{"TRACK", "TITLE", "STATUS", "READY", "URL"},
				[][]string{{
					track.TrackID,
					track.Title,
					track.Status,
					strconv.FormatBool(track.IsReady),
					track.PreviewURL,
				}},
				track,
			)
			if showLyrics {
				out.Lyrics(track.Lyrics)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showLyrics, "lyrics", false, "Print regenerated lyrics")

	return cmd
}

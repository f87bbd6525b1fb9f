package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nwave-fx/fxpipe/internal/controller"
	"github.com/nwave-fx/fxpipe/internal/domain"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

// encodeCmd represents the encode command.
var encodeCmd = newEncodeCmd()

var threadsFlag int
var productionFlag string
var artistFlag string
var openFlag bool

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode path/to/name.0001.exr",
		Short: "Encode an EXR sequence to a review movie",
		Long: `Convert every EXR frame next to the given one to sRGB with ocioconvert,
then assemble a movie with production, shot, date, content, artist and frame
overlays. The content title is read from the third "_" token of the file name,
or asked for when missing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := cfg.EncodeSettings()
			flags := cmd.Flags()

			if flags.Changed("threads") {
				settings.Threads = threadsFlag
			}

			if flags.Changed("production") {
				settings.Production = productionFlag
			}

			if flags.Changed("artist") {
				settings.Artist = artistFlag
			}

			if !openFlag {
				settings.Opener = ""
			}

			return runEncode(cmd, newEncoder(imageFS, runner, settings, logger), m.Path(args[0]), settings.Threads)
		},
	}
	cmd.Flags().IntVarP(&threadsFlag, "threads", "c", m.DefaultThreads, "number of conversion workers")
	cmd.Flags().StringVarP(&productionFlag, "production", "p", m.DefaultProduction, "production name shown in the overlay")
	cmd.Flags().StringVar(&artistFlag, "artist", "", "artist shown in the overlay (default $FXPIPE_ARTIST or $USERNAME)")
	cmd.Flags().BoolVar(&openFlag, "open", false, "open the movie once written")

	return cmd
}

func runEncode(cmd *cobra.Command, encoder domain.Encoder, first m.Path, threads int) error {
	seq, err := encoder.ParseSequence(first)
	if err != nil {
		return err
	}

	if domain.NeedsTitle(seq.Title) {
		if seq.Title, err = ui.PromptTitle(); err != nil {
			return err
		}
	}

	if err := ui.Start(controller.WithEncodeMode()); err != nil {
		return err
	}

	ui.DisplayEncodeStart(seq, threads)

	title := seq.Title
	movie, err := encoder.Encode(cmd.Context(), first,
		domain.WithTitlePrompt(func() (string, error) { return title, nil }),
		domain.WithProgress(ui.DisplayEncodeProgress),
	)

	ui.DisplayEncodeDone(movie, err)
	ui.Wait()

	return err
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

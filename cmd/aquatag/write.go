package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zlElo/Aquatag/internal/cover_file"
	"github.com/zlElo/Aquatag/internal/model"
)

type fieldFlags struct {
	title, artist, album, year, genre string
	cover                             string
}

func newWriteCmd() *cobra.Command {
	var flags fieldFlags

	cmd := &cobra.Command{
		Use:   "write <file|dir>",
		Short: "Change the tags of a file, or of every audio file in a directory",
		Long: `Loads the current tags, replaces the fields given as flags and saves the file.
Fields that are not given keep their value. An empty value removes the field from
MP3 and WAV files; FLAC files keep their previous comment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edit, err := flags.editFunc(cmd)
			if err != nil {
				return err
			}

			path := args[0]
			if stat, err := os.Stat(path); err == nil && stat.IsDir() {
				written, err := tags.ImportTags(path, edit)
				fmt.Fprintf(cmd.OutOrStdout(), "tagged %d files\n", len(written))
				return err
			}

			if !tags.EditTags(path, edit) {
				return fmt.Errorf("could not write tags to %s", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.title, "title", "t", "", "Title")
	cmd.Flags().StringVarP(&flags.artist, "artist", "a", "", "Artist")
	cmd.Flags().StringVarP(&flags.album, "album", "l", "", "Album")
	cmd.Flags().StringVarP(&flags.year, "year", "y", "", "Year or date")
	cmd.Flags().StringVarP(&flags.genre, "genre", "g", "", "Genre")
	cmd.Flags().StringVar(&flags.cover, "cover", "", "PNG or JPEG image, or a directory holding Folder.png/Folder.jpg")

	return cmd
}

// editFunc applies only the flags that were given on the command line.
func (f *fieldFlags) editFunc(cmd *cobra.Command) (func(*model.Track), error) {
	changed := cmd.Flags().Changed

	var image *model.Image
	if changed("cover") {
		var err error
		image, err = cover_file.ReadImageFile(f.cover)
		if err != nil {
			return nil, err
		}
	}

	return func(track *model.Track) {
		if changed("title") {
			track.Title = f.title
		}
		if changed("artist") {
			track.Artist = f.artist
		}
		if changed("album") {
			track.Album = f.album
		}
		if changed("year") {
			track.Year = f.year
		}
		if changed("genre") {
			track.Genre = f.genre
		}
		if image != nil {
			track.Image = image
		}
	}, nil
}

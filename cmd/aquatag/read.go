package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zlElo/Aquatag/internal/artwork"
	"github.com/zlElo/Aquatag/internal/model"
	"github.com/zlElo/Aquatag/internal/service"
)

type coverInfo struct {
	MimeType string `json:"mime_type"`
	Size     int    `json:"size"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type trackInfo struct {
	File   string     `json:"file"`
	Title  string     `json:"title"`
	Artist string     `json:"artist"`
	Album  string     `json:"album"`
	Year   string     `json:"year"`
	Genre  string     `json:"genre"`
	Cover  *coverInfo `json:"cover"`
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <file|dir>...",
		Short: "Print the tags of files as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandPaths(args)
			if err != nil {
				return err
			}

			infos := make([]trackInfo, len(paths))

			g := new(errgroup.Group)
			g.SetLimit(cfg.ReadWorkers)
			for i, path := range paths {
				i, path := i, path
				g.Go(func() error {
					infos[i] = toTrackInfo(tags.ReadTags(path))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(infos)
		},
	}
}

// expandPaths replaces each directory by the audio files it contains.
func expandPaths(args []string) ([]string, error) {
	paths := []string{}
	for _, arg := range args {
		stat, err := os.Stat(arg)
		if err != nil || !stat.IsDir() {
			paths = append(paths, arg)
			continue
		}

		files, err := service.FindAudioFiles(arg)
		if errors.Is(err, service.ErrNoAudioFiles) {
			logger.Warn("no audio files", zap.String("dir", arg))
			continue
		}
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}
	return paths, nil
}

func toTrackInfo(track *model.Track) trackInfo {
	info := trackInfo{
		File:   track.FilePath,
		Title:  track.Title,
		Artist: track.Artist,
		Album:  track.Album,
		Year:   track.Year,
		Genre:  track.Genre,
	}

	if track.Image != nil {
		info.Cover = &coverInfo{MimeType: track.Image.MimeType, Size: len(track.Image.Data)}
		if w, h, err := artwork.Dimensions(track.Image); err == nil {
			info.Cover.Width, info.Cover.Height = w, h
		}
	}

	return info
}

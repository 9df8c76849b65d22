package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zlElo/Aquatag/internal/model"
)

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <file|dir>...",
		Short: `Rename files to "Artist - Title" from their tags`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandPaths(args)
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range paths {
				newPath, err := tags.RenameByTags(path)
				if err != nil {
					logger.Error("rename failed",
						zap.String("file", path),
						zap.Stringer("kind", model.KindOf(err)),
						zap.Error(err))
					failed++
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), newPath)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files were not renamed", failed, len(paths))
			}
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cover <file> [dir]",
		Short: "Save the embedded cover as Folder.png or Folder.jpg",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) == 2 {
				dir = args[1]
			}

			imageFilePath, err := tags.ExportCover(args[0], dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), imageFilePath)
			return nil
		},
	}
}

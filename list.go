package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/playlist"
	"github.com/llehouerou/tplay/internal/tags"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [path]",
		Short: "Print the playlist that would be played and exit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.changed = cmd.Flags().Changed
			cfg, err := loadConfig(*opts)
			if err != nil {
				return fail(err.Error())
			}
			pl, target, err := buildPlaylist(cfg, firstArg(args))
			if err != nil {
				return fail(err.Error())
			}
			meta := tags.NewCache(metadataCacheSize, zap.NewNop())
			return writeListing(cmd.OutOrStdout(), pl, pl.StartIndex(target), meta)
		},
	}
}

// durationSource is the part of tags.Cache the listing needs.
type durationSource interface {
	Duration(path string) int
}

// writeListing prints one line per track: marker, index, duration, size, name.
func writeListing(w io.Writer, pl playlist.Playlist, start int, meta durationSource) error {
	var totalSecs int
	var totalBytes uint64

	for i, t := range pl.Tracks() {
		marker := " "
		if i == start {
			marker = ">"
		}

		secs := meta.Duration(t.Path)
		totalSecs += secs

		size := "?"
		if info, err := os.Stat(t.Path); err == nil {
			totalBytes += uint64(info.Size()) //nolint:gosec // file sizes are non-negative
			size = humanize.Bytes(uint64(info.Size()))
		}

		if _, err := fmt.Fprintf(w, "%s %3d  %s  %8s  %s\n",
			marker, i+1, clock(secs), size, t.Name()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d tracks, %s, %s\n",
		pl.Len(), clock(totalSecs), humanize.Bytes(totalBytes))
	return err
}

func clock(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

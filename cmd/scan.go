package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/jsphweid/chordex/bucket"
	"github.com/jsphweid/chordex/db"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	withMetadata bool
	scanTop      int
)

func init() {
	scanCmd.Flags().BoolVarP(&withMetadata, "metadata", "m", false, "look up file metadata in DynamoDB")
	scanCmd.Flags().IntVarP(&scanTop, "top", "n", 20, "number of chords to report")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [dir] [max]",
	Short: "Tallies the chords in midi files",
	Long:  `Tallies the chords in every midi file under dir (MEDIA_PATH by default). max limits the number of files.`,
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.MediaDir
		if len(args) > 0 {
			dir = args[0]
		}
		if dir == "" {
			return errors.New("no directory given and MEDIA_PATH is not set")
		}

		var maxNum int
		if len(args) == 2 {
			arg1, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			maxNum = arg1
		}

		return scan(cmd.OutOrStdout(), dir, maxNum)
	},
}

func scan(w io.Writer, dir string, maxNum int) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}
	acc, err := cfg.AccidentalPreference()
	if err != nil {
		return err
	}

	paths, err := util.GatherAllMidiPaths(dir, maxNum)
	if err != nil {
		return err
	}
	fileNumMap := bucket.CreateFileNumMap(paths)

	buckets := bucket.New(dict, acc)
	buckets.ProcessAllMidiFiles(fileNumMap)

	var metadatas map[string]model.MidiMetadata
	if withMetadata {
		store, err := db.Connect(cfg.MetadataEndpoint, cfg.MetadataRegion, cfg.MetadataTable)
		if err != nil {
			return err
		}
		metadatas, err = store.GetMidiMetadatas(relativePaths(dir, paths))
		if err != nil {
			return err
		}
	}

	report(w, buckets, dir, fileNumMap, metadatas)
	return nil
}

// metadata is keyed by the path below the media directory
func relativePaths(dir string, paths []string) []string {
	res := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			rel = p
		}
		res = append(res, rel)
	}
	return res
}

func report(w io.Writer, b *bucket.Buckets, dir string, files model.FileNumToMidiPath, metadatas map[string]model.MidiMetadata) {
	ranked := b.Ranked()
	fmt.Fprintf(w, "files: %v\n", len(files))
	fmt.Fprintf(w, "sonorities: %v\n", b.NumSonorities)
	fmt.Fprintf(w, "unmatched: %v\n", b.NumUnmatched)
	fmt.Fprintf(w, "distinct chords: %v\n", len(ranked))

	top := len(ranked)
	if scanTop >= 0 {
		top = util.Min(scanTop, top)
	}
	for _, e := range ranked[:top] {
		fmt.Fprintf(w, "%8d  %-10s in %d files\n", e.Count, e.Symbol, len(e.FileNums))
	}

	if metadatas == nil {
		return
	}
	for _, num := range util.GetKeysSorted(files) {
		rel := relativePaths(dir, []string{files[num]})[0]
		if m, ok := metadatas[rel]; ok {
			fmt.Fprintf(w, "%v: %v - %v (%v, %v)\n", rel, m.Artist, m.Title, m.Release, m.Year)
		}
	}
}

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileforge/internal/storage"
	"github.com/vovakirdan/tileforge/internal/tilemap"
)

var flagScanPrune bool

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Index .tmx files into the map catalog",
	Long: `Walk a directory tree and record every .tmx map file in the catalog.

Files that fail to parse are skipped with a warning; the scan continues.
Rescanning a known file replaces its layer records, so the catalog tracks
the current contents of each map.

Examples:
  tileforge scan ./maps
  tileforge scan ./maps --prune`,
	Args: cobra.ExactArgs(1),
	Run:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&flagScanPrune, "prune", false, "Drop cataloged maps whose files no longer exist")
}

func runScan(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "scan",
	})

	store, err := storage.Open(cfg.Catalog.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening map catalog: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scanned := 0
	added := 0
	refreshed := 0

	walkErr := filepath.WalkDir(args[0], func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".tmx") {
			return nil
		}

		// Catalog absolute paths so later loads work from any directory
		absPath, absErr := filepath.Abs(path)
		if absErr != nil {
			absPath = path
		}

		scanned++
		info, infoErr := tilemap.ReadInfo(absPath)
		if infoErr != nil {
			logger.Warn("skipping unreadable map", "path", path, "error", infoErr)
			return nil
		}

		known, lookErr := store.MapByPath(absPath)
		if lookErr != nil {
			logger.Warn("could not check catalog", "path", path, "error", lookErr)
		}

		if _, recErr := store.RecordMap(info); recErr != nil {
			logger.Warn("could not record map", "path", path, "error", recErr)
			return nil
		}

		if known != nil {
			refreshed++
		} else {
			added++
		}
		return nil
	})
	if walkErr != nil {
		fmt.Fprintf(os.Stderr, "Error walking %s: %v\n", args[0], walkErr)
		os.Exit(1)
	}

	pruned := 0
	if flagScanPrune {
		entries, listErr := store.Maps()
		if listErr != nil {
			fmt.Fprintf(os.Stderr, "Error listing catalog: %v\n", listErr)
			os.Exit(1)
		}
		for _, entry := range entries {
			if _, statErr := os.Stat(entry.Path); statErr == nil {
				continue
			}
			if rmErr := store.RemoveMap(entry.Path); rmErr != nil {
				logger.Warn("could not prune map", "path", entry.Path, "error", rmErr)
				continue
			}
			pruned++
		}
	}

	fmt.Printf("Scanned %d file(s): %d added, %d refreshed", scanned, added, refreshed)
	if flagScanPrune {
		fmt.Printf(", %d pruned", pruned)
	}
	fmt.Println()
}

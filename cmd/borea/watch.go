package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
)

// watchAndRegenerate re-runs generate whenever the input OpenAPI document
// changes on disk, until interrupted.
func watchAndRegenerate(inputPath string, generate func() int) int {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: creating watcher: %v", err))
		return 1
	}
	defer watcher.Close()

	dir := filepath.Dir(inputPath)
	if err := watcher.Add(dir); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: watching %s: %v", dir, err))
		return 1
	}

	fmt.Println(color.CyanString("Watching %s for changes...", inputPath))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			if filepath.Clean(event.Name) != filepath.Clean(inputPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fmt.Println(color.CyanString("Change detected in %s, regenerating...", inputPath))
			generate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			fmt.Fprintln(os.Stderr, color.RedString("watcher error: %v", err))
		}
	}
}

package driver

import (
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch runs commandFilePath once, then reruns it every time a .pcn file
// inside inDir is written or created and its parsed content differs from
// the cached parse. It returns when stop is closed, when the watcher
// closes, or when the watcher reports an error other than an event
// overflow; a failed run is logged and does not end the watch. It is the
// CLI's `watch` subcommand (SPEC_FULL §5), an ambient dev-tool surface
// fixed only insofar as it feeds the same Driver.Run used by `run` - it
// adds no new engine semantics.
func (d *Driver) Watch(commandFilePath string, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(d.InDir); err != nil {
		return err
	}

	if err := d.Run(commandFilePath); err != nil {
		d.Log.Error("initial run failed", "err", err)
	}

	for {
		select {
		case <-stop:
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(ev.Name) != ".pcn" {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			_, _, changed, err := d.cache.Parse(ev.Name)
			if err != nil {
				d.Log.Error("rereading changed input", "file", ev.Name, "err", err)
				continue
			}
			if !changed {
				d.Log.Debug("mtime churn without content change, skipping rerun", "file", ev.Name)
				continue
			}
			d.quit = false
			d.Log.Info("input changed, rerunning", "file", ev.Name)
			if err := d.Run(commandFilePath); err != nil {
				d.Log.Error("rerun failed", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if err != nil && !errors.Is(err, fsnotify.ErrEventOverflow) {
				return err
			}
		}
	}
}

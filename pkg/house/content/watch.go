package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Settle is how long the content file must be quiet before it is reloaded.
var Settle = 150 * time.Millisecond

// Watch reloads the document at path whenever it is written and passes each
// valid document to onChange. Invalid documents go to onError and the caller
// keeps its previous document. Watch blocks until ctx is done.
//
// The parent directory is watched rather than the file, so editors that save
// by renaming a temporary file are still seen. Bursts of events are coalesced
// into one reload after the file has been quiet for Settle.
func Watch(ctx context.Context, path string, onChange func(*Document), onError func(error)) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expand content path: %w", err)
	}
	expanded, err = filepath.Abs(expanded)
	if err != nil {
		return fmt.Errorf("resolve content path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(expanded)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(expanded), err)
	}

	settle := time.NewTimer(Settle)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != expanded {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				settle.Reset(Settle)
			}
		case <-settle.C:
			doc, err := Load(expanded)
			if err != nil {
				onError(err)
				continue
			}
			onChange(doc)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(fmt.Errorf("content watcher: %w", err))
		}
	}
}

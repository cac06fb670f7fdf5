package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	arborerrors "github.com/go-drift/arbor/pkg/errors"
)

// Watch reloads the settings file at path whenever it changes, installs the
// result with Set, and calls onChange (if non-nil) with the new settings.
// Reload failures are reported and leave the active settings untouched; a
// panicking onChange is recovered and reported.
// The returned function stops watching.
func Watch(path string, onChange func(Settings)) (stop func() error, err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory so editors that replace the file are still seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	target := filepath.Clean(path)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				log.Info().Str("file", ev.Name).Msg("settings file changed, reloading")
				reload(path, onChange)
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				arborerrors.Report(&arborerrors.Error{
					Op:   "config.Watch",
					Kind: arborerrors.KindConfig,
					Err:  werr,
				})
			}
		}
	}()

	return func() error {
		err := watcher.Close()
		<-done
		return err
	}, nil
}

func reload(path string, onChange func(Settings)) {
	s, err := LoadFile(path)
	if err != nil {
		arborerrors.Report(&arborerrors.Error{
			Op:   "config.reload",
			Kind: arborerrors.KindConfig,
			Err:  err,
		})
		return
	}
	Set(s)
	if onChange != nil {
		notify(onChange, s)
	}
}

func notify(onChange func(Settings), s Settings) {
	defer arborerrors.Recover("config.Watch.onChange")
	onChange(s)
}

package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// FileProvider stores the shared configuration document as a local JSON file.
type FileProvider struct {
	path     string
	readOnly bool

	mu      sync.Mutex
	fetched time.Time // mtime of the last fetched copy
}

// NewFileProvider creates a provider backed by the file at path.
func NewFileProvider(path string, readOnly bool) *FileProvider {
	return &FileProvider{path: path, readOnly: readOnly}
}

// Name identifies the provider in logs and summaries.
func (p *FileProvider) Name() string {
	return "local file: " + p.path
}

// FetchConfiguration reads the document from disk. A missing file yields an
// empty document.
func (p *FileProvider) FetchConfiguration() (string, error) {
	content, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read configuration file: %w", err)
	}

	p.rememberModTime()

	return string(content), nil
}

// UpdateConfiguration writes the document to disk.
func (p *FileProvider) UpdateConfiguration(document string) error {
	if p.readOnly {
		return ErrProviderReadOnly
	}

	if err := os.WriteFile(p.path, []byte(document), 0o600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	p.rememberModTime()

	return nil
}

// IsUpdateRequired reports whether the file on disk is newer than the last
// fetched copy.
func (p *FileProvider) IsUpdateRequired() bool {
	info, err := os.Stat(p.path)
	if err != nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return info.ModTime().After(p.fetched)
}

// IsMutable reports whether the provider accepts updates.
func (p *FileProvider) IsMutable() bool {
	return !p.readOnly
}

// Watch re-fetches the document and hands it to reload whenever the file
// changes on disk. The returned stop function ends the watch.
func (p *FileProvider) Watch(reload func(document string) error) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create configuration watcher: %w", err)
	}

	if err := watcher.Add(p.path); err != nil {
		closeWatcher(watcher)
		return nil, fmt.Errorf("failed to watch configuration file: %w", err)
	}

	done := make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				document, errFetch := p.FetchConfiguration()
				if errFetch != nil {
					log.Error().Err(errFetch).Str("path", p.path).Msg("failed to re-read configuration file")
					continue
				}

				if errReload := reload(document); errReload != nil {
					log.Error().Err(errReload).Str("path", p.path).Msg("failed to reload configuration")
				}
			case errWatch, ok := <-watcher.Errors:
				if !ok {
					return
				}

				log.Error().Err(errWatch).Str("path", p.path).Msg("configuration watcher error")
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		closeWatcher(watcher)
	}

	return stop, nil
}

func (p *FileProvider) rememberModTime() {
	info, err := os.Stat(p.path)
	if err != nil {
		return
	}

	p.mu.Lock()
	p.fetched = info.ModTime()
	p.mu.Unlock()
}

func closeWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close configuration watcher")
	}
}

// Package localfs implements the archive store over a local file system.
package localfs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/openarchive/aipkit/pkg/store"
	"github.com/openarchive/aipkit/pkg/store/status"
	"github.com/spf13/afero"
)

// New creates an archive store backed by a file system. With a nil fs the
// store lands under .aipkit/archives in the working directory.
func New(fs afero.Fs) store.Store {
	if fs == nil {
		fs = afero.NewBasePathFs(afero.NewOsFs(), filepath.Join(".aipkit", "archives"))
	}
	return &localFS{fs: fs}
}

type localFS struct {
	fs afero.Fs
}

func (l *localFS) String() string {
	return "localfs"
}

func (l *localFS) Has(_ context.Context, key string) (bool, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !fi.IsDir(), nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, status.ErrNotFound
	}
	return l.fs.Open(key)
}

func (l *localFS) Put(_ context.Context, key string, r io.Reader) error {
	if dir := filepath.Dir(key); dir != "" && dir != "." {
		if err := l.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteReader(l.fs, key, r)
}

func (l *localFS) Delete(_ context.Context, key string) error {
	if err := l.fs.Remove(key); err != nil {
		if os.IsNotExist(err) {
			return status.ErrNotFound
		}
		return err
	}
	return nil
}

func (l *localFS) Keys(_ context.Context) ([]string, error) {
	var keys []string
	err := afero.Walk(l.fs, ".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		keys = append(keys, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

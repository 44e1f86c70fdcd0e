// Package static serves every path the dispatcher does not render itself.
package static

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"debugfixture/internal/errors"
)

// New returns a read-only file server over fsys. Missing files answer 404,
// permission failures 403 and other errors 500; http.FileServer picks the
// content type from the extension, falling back to sniffing.
func New(fsys afero.Fs) http.Handler {
	return http.FileServer(afero.NewHttpFs(afero.NewReadOnlyFs(fsys)))
}

// Dir confines an OS directory behind a BasePathFs so requests cannot reach
// outside of it.
func Dir(dir string) (afero.Fs, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.New(errors.StaticUnavailable, "cannot resolve static directory "+dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.New(errors.StaticUnavailable, "cannot open static directory "+abs, err)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.StaticUnavailable, abs+" is not a directory", nil)
	}
	return afero.NewBasePathFs(afero.NewOsFs(), abs), nil
}

// Source picks the filesystem for dir: the built-in assets when dir is empty,
// the confined OS directory otherwise.
func Source(dir string) (afero.Fs, error) {
	if dir == "" {
		return Builtin(), nil
	}
	return Dir(dir)
}

// Package static embeds the files tomate installs into its data directory
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/tomate/internal/osutil"
)

const filesDir = "files"

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into appDir under the XDG data
// directory. Files that already exist are left alone.
func Install(appDir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(filesDir, path)
			if err != nil {
				return err
			}

			destPath, err := xdg.DataFile(filepath.Join(appDir, rel))
			if err != nil {
				return err
			}

			_, err = os.Stat(destPath)
			if err == nil || !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
}

package timer

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/tomate/internal/pathutil"
)

const notificationTitle = "tomate"

// Notifier delivers a one-shot message to the user.
type Notifier interface {
	Notify(message string) error
}

// DesktopNotifier shows messages through the host's notification facility.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(message string) error {
	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(pathutil.Dir(), "icon.png"),
	)

	return beeep.Notify(notificationTitle, message, pathToIcon)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string) error {
	return nil
}

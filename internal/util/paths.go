package util

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// LogFile resolves name inside the app's XDG data directory, creating
// the directory if needed.
func LogFile(app, name string) (string, error) {
	return xdg.DataFile(filepath.Join(app, name))
}

// ReportsDir is the default destination for exported session reports:
// an upper-cased app folder in the user's documents directory.
func ReportsDir(app string) string {
	return filepath.Join(xdg.UserDirs.Documents, strings.ToUpper(app))
}

package desktop

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLocale is the only locale consulted for localized keys.
const DefaultLocale = "en"

// DataHome returns $XDG_DATA_HOME, or ~/.local/share when unset.
func DataHome() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" && filepath.IsAbs(d) {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultDirs returns the standard application directories in precedence
// order: the user's own entries, system entries, then Flatpak exports.
func DefaultDirs() []string {
	var dirs []string
	dataHome := DataHome()
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "applications"))
	}
	dirs = append(dirs,
		"/usr/share/applications",
		"/usr/local/share/applications",
	)
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "flatpak", "exports", "share", "applications"))
	}
	dirs = append(dirs, "/var/lib/flatpak/exports/share/applications")
	return dirs
}

// Files lists *.desktop files under each directory, recursively.
//
// Directories are visited in the order given and never reordered; a missing
// or unreadable directory contributes nothing. A directory that is itself a
// symlink is followed, and the returned paths stay under the name given.
// onErr, if non-nil, receives walk errors other than a missing root.
func Files(dirs []string, onErr func(path string, err error)) []string {
	var out []string
	for _, dir := range dirs {
		root, err := filepath.EvalSymlinks(dir)
		if err != nil {
			if !os.IsNotExist(err) && onErr != nil {
				onErr(dir, err)
			}
			continue
		}
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if onErr != nil {
					onErr(path, err)
				}
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".desktop") {
				return nil
			}
			if rel, err := filepath.Rel(root, path); err == nil {
				path = filepath.Join(dir, rel)
			}
			out = append(out, path)
			return nil
		})
	}
	return out
}

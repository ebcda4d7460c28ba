package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// DiskDir is where on-disk overrides are looked up. Empty disables overrides.
var DiskDir = "prefabs"

// Load returns the on-disk copy of a prefab when present, else the embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if path := diskPrefabPath(clean); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	path := diskPrefabPath(cleanPrefabPath(name))
	if path == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	if DiskDir == "" || clean == "" {
		return ""
	}
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}

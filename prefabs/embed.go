package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

// Dir is the on-disk prefab directory. Files found there shadow the embedded
// copies so tuning can be edited without a rebuild.
const Dir = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func LoadScript(name string) ([]byte, error) {
	clean := "scripts/" + strings.TrimPrefix(cleanPrefabPath(name), "scripts/")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	s := filepath.ToSlash(path)
	s, _ = strings.CutPrefix(s, Dir+"/")
	return s
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}

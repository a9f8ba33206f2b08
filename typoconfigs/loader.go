package typoconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/typogenetics/configs"
	"github.com/reusee/typogenetics/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"typo.cue",
	".typo.cue",
}

// configDirs lists directories searched for config files, nearest first.
func configDirs() (ret []string) {
	if dir, err := os.Getwd(); err == nil {
		ret = append(ret, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, dir)
	}
	ret = append(ret, "/etc")
	return
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := findConfigFiles(configDirs())
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}

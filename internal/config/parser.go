package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	ellserrors "github.com/alexisbeaulieu97/ells/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads settings from path. An empty path means DefaultPath, and a
// missing file at the default location yields Defaults. A missing file
// named explicitly is an error.
func Load(path string) (Settings, error) {
	explicit := path != ""
	if !explicit {
		def, err := DefaultPath()
		if err != nil {
			return Defaults(), nil
		}
		path = def
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Settings{}, ellserrors.NewParseError(path, 0, err)
	}

	return Parse(path, data)
}

// Parse decodes and validates a settings document. Keys missing from data
// keep their default values; unknown keys are rejected.
func Parse(path string, data []byte) (Settings, error) {
	settings := Defaults()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, ellserrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

package config

import (
	"path/filepath"

	yaml "github.com/goccy/go-yaml"
)

// CfgPath is a path which, when relative, is taken relative to the
// directory of the config file it was read from.
type CfgPath string

// UnmarshalBase is the directory of the config file being decoded. The
// decoder offers no way to pass it down, so Parse sets it for the
// duration of the decode.
var UnmarshalBase string

func (c *CfgPath) UnmarshalYAML(b []byte) error {
	var path string

	err := yaml.Unmarshal(b, &path)
	if err != nil {
		return err
	}

	if filepath.IsAbs(path) || UnmarshalBase == "" || path == "" {
		*c = CfgPath(path)
	} else {
		*c = CfgPath(filepath.Join(UnmarshalBase, path))
	}
	return nil
}

func (c CfgPath) String() string {
	return string(c)
}

package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"debugfixture/internal/errors"
)

// File is the on-disk shape of a catalog override. A list left out of the
// file keeps the built-in triggers; an explicit empty list disables that kind.
type File struct {
	Params  []string `json:"params" yaml:"params" toml:"params"`
	Headers []string `json:"headers" yaml:"headers" toml:"headers"`
}

// LoadFile reads a catalog override from fs. The format follows the file
// extension: .json, .yaml/.yml or .toml.
func LoadFile(fs afero.Fs, path string) (*TriggerSet, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.New(errors.CatalogInvalid, "cannot read catalog file "+path, err)
	}
	return Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Parse decodes a catalog override in the given format.
func Parse(data []byte, format string) (*TriggerSet, error) {
	var f File
	var err error
	switch strings.ToLower(format) {
	case "json":
		err = json.Unmarshal(data, &f)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &f)
	case "toml":
		_, err = toml.Decode(string(data), &f)
	default:
		return nil, errors.New(errors.CatalogInvalid,
			fmt.Sprintf("unsupported catalog format %q", format), nil)
	}
	if err != nil {
		return nil, errors.New(errors.CatalogInvalid, "cannot decode "+format+" catalog", err)
	}

	params, headers := f.Params, f.Headers
	if params == nil {
		params = defaultParams
	}
	if headers == nil {
		headers = defaultHeaders
	}
	return New(params, headers)
}

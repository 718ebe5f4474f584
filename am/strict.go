package am

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/teranos/papyrus-typegen/errors"
)

// UnknownKeys decodes the TOML file at path against Config and returns the
// dotted keys that match no setting, sorted.
func UnknownKeys(path string) ([]string, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	undecoded := md.Undecoded()
	keys := make([]string, 0, len(undecoded))
	for _, key := range undecoded {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)
	return keys, nil
}

// CheckUnknownKeys returns an ErrInvalidConfig naming every unknown key in
// the file at path
func CheckUnknownKeys(path string) error {
	keys, err := UnknownKeys(path)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	err = errors.NewInvalidConfigError("%s: unknown keys %v", path, keys)
	return errors.WithHint(err, "run 'typegen config show' to list valid settings")
}

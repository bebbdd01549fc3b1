package config

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/aliasmap/pkg/aliases"
	"github.com/arthur-debert/aliasmap/pkg/errors"
)

// EnvPrefix is the prefix for environment variable overrides.
// ALIASMAP_PLACEHOLDERS_ENV=prod overrides the placeholder "env".
const EnvPrefix = "ALIASMAP_"

// Definitions is the parsed content of an alias definition file
type Definitions struct {
	// Aliases maps each alias to its canonical name
	Aliases map[string]string `koanf:"aliases"`

	// Placeholders supplies values for ${key} substitution
	Placeholders map[string]string `koanf:"placeholders"`
}

// Load reads an alias definition file, picking the parser from the file
// extension, and applies environment variable overrides on top.
func Load(path string) (*Definitions, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to load definitions from %s", path)
	}

	// Env vars override file values: ALIASMAP_PLACEHOLDERS_FOO -> placeholders.foo
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var defs Definitions
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &defs,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &defs, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to parse definitions from %s", path)
	}

	if defs.Aliases == nil {
		defs.Aliases = make(map[string]string)
	}
	if defs.Placeholders == nil {
		defs.Placeholders = make(map[string]string)
	}

	return &defs, nil
}

// Apply registers every alias pair into the registry. Pairs are applied in
// sorted alias order so a conflicting or circular definition fails on the
// same pair every run.
func (d *Definitions) Apply(reg aliases.Registry) error {
	keys := make([]string, 0, len(d.Aliases))
	for alias := range d.Aliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)

	for _, alias := range keys {
		if err := reg.Register(d.Aliases[alias], alias); err != nil {
			return err
		}
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse,
			"unsupported definition file extension '%s' (want .toml, .yaml or .yml)", ext)
	}
}

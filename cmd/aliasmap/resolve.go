package main

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/aliasmap/pkg/errors"
	"github.com/arthur-debert/aliasmap/pkg/resolver"
)

// resolvedDefinitions is the serialized form of a resolved alias map
type resolvedDefinitions struct {
	Aliases map[string]string `toml:"aliases" yaml:"aliases"`
}

func newResolveCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: MsgResolveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, defs, err := loadRegistry(args[0])
			if err != nil {
				return err
			}

			if err := reg.Resolve(resolver.Placeholders(defs.Placeholders)); err != nil {
				return err
			}

			resolved := resolvedDefinitions{Aliases: make(map[string]string)}
			for _, alias := range reg.List() {
				name, err := reg.Get(alias)
				if err != nil {
					return err
				}
				resolved.Aliases[alias] = name
			}

			if outPath != "" {
				data, err := marshalResolved(resolved, outPath)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outPath, data, 0644); err != nil {
					return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", outPath)
				}
				cmd.Printf(MsgWroteFileFormat, outPath)
				return nil
			}

			cmd.Println(formatBold(MsgResolvedHeader))
			for _, alias := range reg.List() {
				cmd.Printf("  %s -> %s\n", alias, resolved.Aliases[alias])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", MsgFlagOutput)
	return cmd
}

// marshalResolved serializes the resolved map in the format implied by the
// output path's extension.
func marshalResolved(resolved resolvedDefinitions, path string) ([]byte, error) {
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		data, err := toml.Marshal(resolved)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal resolved aliases")
		}
		return data, nil
	case ".yaml", ".yml":
		data, err := yaml.Marshal(resolved)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal resolved aliases")
		}
		return data, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unsupported output extension '%s' (want .toml, .yaml or .yml)", ext)
	}
}

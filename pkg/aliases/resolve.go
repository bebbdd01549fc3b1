package aliases

import (
	"github.com/arthur-debert/aliasmap/pkg/errors"
)

// Resolve applies the transformer to every stored (alias, name) pair,
// rewriting the registry in place. Pairs whose alias or name resolve to no
// value, or collapse onto each other, are dropped; a rewritten alias that
// collides with a differently-bound existing alias fails with a conflict.
//
// The pass iterates a snapshot of the pre-transform map, so one pair's
// rewrite does not change the inputs another pair is transformed from, but
// writes land on the live map and are visible to the conflict and cycle
// checks of later pairs. On error the pass stops immediately; rewrites
// already applied in the same pass are NOT rolled back.
func (r *registry) Resolve(transform Transformer) error {
	if transform == nil {
		return errors.New(errors.ErrInvalidInput, "transformer must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(map[string]string, len(r.entries))
	for alias, name := range r.entries {
		snapshot[alias] = name
	}

	for alias, registeredName := range snapshot {
		resolvedAlias, aliasOK := transform(alias)
		resolvedName, nameOK := transform(registeredName)

		switch {
		case !aliasOK || !nameOK || resolvedAlias == resolvedName:
			delete(r.entries, alias)
			r.logger.Debug().
				Str("alias", alias).
				Str("name", registeredName).
				Msg("Alias dropped during resolution")

		case resolvedAlias != alias:
			if existingName, exists := r.entries[resolvedAlias]; exists {
				if existingName == resolvedName {
					// Pointing to existing alias - just remove the placeholder
					delete(r.entries, alias)
					continue
				}
				return errors.Newf(errors.ErrAliasConflict,
					"cannot register resolved alias '%s' (original: '%s') for name '%s': it is already registered for name '%s'",
					resolvedAlias, alias, resolvedName, existingName).
					WithDetail("alias", resolvedAlias).
					WithDetail("registered", existingName)
			}
			if err := r.checkForAliasCircle(resolvedName, resolvedAlias); err != nil {
				return err
			}
			delete(r.entries, alias)
			r.entries[resolvedAlias] = resolvedName
			r.logger.Debug().
				Str("from", alias).
				Str("to", resolvedAlias).
				Str("name", resolvedName).
				Msg("Alias rewritten during resolution")

		case registeredName != resolvedName:
			r.entries[alias] = resolvedName
		}
	}
	return nil
}

package aliases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/aliasmap/pkg/aliases"
	"github.com/arthur-debert/aliasmap/pkg/errors"
)

// identityExcept returns a transformer that maps the given keys and passes
// every other name through unchanged.
func identityExcept(mapping map[string]string) aliases.Transformer {
	return func(name string) (string, bool) {
		if resolved, ok := mapping[name]; ok {
			return resolved, true
		}
		return name, true
	}
}

func TestResolveNilTransformer(t *testing.T) {
	reg := aliases.New()

	err := reg.Resolve(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestResolvePlaceholderAlias(t *testing.T) {
	reg := aliases.New()
	require.NoError(t, reg.Register("target", "${ph}"))

	err := reg.Resolve(identityExcept(map[string]string{"${ph}": "realAlias"}))
	require.NoError(t, err)

	assert.False(t, reg.IsAlias("${ph}"))
	assert.True(t, reg.IsAlias("realAlias"))

	canonical, err := reg.CanonicalName("realAlias")
	require.NoError(t, err)
	assert.Equal(t, "target", canonical)
}

func TestResolveRewritesTarget(t *testing.T) {
	reg := aliases.New()
	require.NoError(t, reg.Register("${target}", "a"))

	err := reg.Resolve(identityExcept(map[string]string{"${target}": "realTarget"}))
	require.NoError(t, err)

	assert.True(t, reg.IsAlias("a"))

	canonical, err := reg.CanonicalName("a")
	require.NoError(t, err)
	assert.Equal(t, "realTarget", canonical)
}

func TestResolveDropsEntries(t *testing.T) {
	t.Run("alias resolves to no value", func(t *testing.T) {
		reg := aliases.New()
		require.NoError(t, reg.Register("target", "dropme"))

		err := reg.Resolve(func(name string) (string, bool) {
			if name == "dropme" {
				return "", false
			}
			return name, true
		})
		require.NoError(t, err)
		assert.Zero(t, reg.Count())
	})

	t.Run("name resolves to no value", func(t *testing.T) {
		reg := aliases.New()
		require.NoError(t, reg.Register("dropme", "a"))

		err := reg.Resolve(func(name string) (string, bool) {
			if name == "dropme" {
				return "", false
			}
			return name, true
		})
		require.NoError(t, err)
		assert.Zero(t, reg.Count())
	})

	t.Run("alias and name collapse to same value", func(t *testing.T) {
		reg := aliases.New()
		require.NoError(t, reg.Register("target", "${alias}"))

		err := reg.Resolve(identityExcept(map[string]string{"${alias}": "target"}))
		require.NoError(t, err)
		assert.Zero(t, reg.Count())
	})
}

func TestResolveRedundantAliasIsDropped(t *testing.T) {
	reg := aliases.New()
	require.NoError(t, reg.Register("target", "real"))
	require.NoError(t, reg.Register("target", "${ph}"))

	// ${ph} rewrites onto the already-present, identically-bound alias
	err := reg.Resolve(identityExcept(map[string]string{"${ph}": "real"}))
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Count())
	assert.True(t, reg.IsAlias("real"))
	assert.False(t, reg.IsAlias("${ph}"))
}

func TestResolveConflict(t *testing.T) {
	reg := aliases.New()
	require.NoError(t, reg.Register("target1", "real"))
	require.NoError(t, reg.Register("target2", "${ph}"))

	// ${ph} rewrites onto an alias bound to a different name
	err := reg.Resolve(identityExcept(map[string]string{"${ph}": "real"}))
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasConflict),
		"expected ALIAS_CONFLICT, got %v", err)
}

func TestResolveCircle(t *testing.T) {
	reg := aliases.New()
	require.NoError(t, reg.Register("a", "b"))
	require.NoError(t, reg.Register("target", "${ph}"))

	// The rewritten pair would register alias 'a' for name 'b', but 'b' is
	// already an alias of 'a'
	err := reg.Resolve(identityExcept(map[string]string{
		"${ph}":  "a",
		"target": "b",
	}))
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasCircle),
		"expected ALIAS_CIRCLE, got %v", err)
}

func TestResolveIdentityLeavesMapUntouched(t *testing.T) {
	reg := aliases.New()
	require.NoError(t, reg.Register("bean1", "b1"))
	require.NoError(t, reg.Register("b1", "b1a"))

	err := reg.Resolve(func(name string) (string, bool) { return name, true })
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Count())
	assert.ElementsMatch(t, []string{"b1", "b1a"}, reg.Aliases("bean1"))
}

func TestResolveFailureIsNotRolledBack(t *testing.T) {
	// Fail-fast with no rollback: after a failing pass the map holds
	// whatever the rewrites processed before the failure left behind.
	reg := aliases.New()
	require.NoError(t, reg.Register("target1", "real"))
	require.NoError(t, reg.Register("target2", "${ph}"))
	require.NoError(t, reg.Register("other", "${keep}"))

	err := reg.Resolve(identityExcept(map[string]string{
		"${ph}":   "real", // conflicts with the 'real' -> target1 binding
		"${keep}": "kept",
	}))
	require.True(t, errors.IsErrorCode(err, errors.ErrAliasConflict))

	// The untouched binding survives; the third one is either rewritten or
	// still a placeholder depending on where in the pass the failure hit.
	assert.True(t, reg.IsAlias("real"))
	assert.True(t, reg.IsAlias("${keep}") || reg.IsAlias("kept"))
}

package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/aliasmap/pkg/aliases"
	"github.com/arthur-debert/aliasmap/pkg/resolver"
)

func TestPlaceholders(t *testing.T) {
	transform := resolver.Placeholders(map[string]string{
		"env":  "prod",
		"tier": "db",
	})

	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"no placeholder", "service", "service", true},
		{"single placeholder", "${env}-service", "prod-service", true},
		{"multiple placeholders", "${env}-${tier}", "prod-db", true},
		{"placeholder only", "${env}", "prod", true},
		{"unknown key drops", "${missing}-service", "", false},
		{"known and unknown drops", "${env}-${missing}", "", false},
		{"empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := transform(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMap(t *testing.T) {
	transform := resolver.Map(map[string]string{"old": "new"})

	got, ok := transform("old")
	require.True(t, ok)
	assert.Equal(t, "new", got)

	got, ok = transform("untouched")
	require.True(t, ok)
	assert.Equal(t, "untouched", got)
}

func TestChain(t *testing.T) {
	t.Run("applies left to right", func(t *testing.T) {
		transform := resolver.Chain(
			resolver.Placeholders(map[string]string{"ph": "step1"}),
			resolver.Map(map[string]string{"step1": "step2"}),
		)

		got, ok := transform("${ph}")
		require.True(t, ok)
		assert.Equal(t, "step2", got)
	})

	t.Run("absence short-circuits", func(t *testing.T) {
		calls := 0
		counting := aliases.Transformer(func(name string) (string, bool) {
			calls++
			return name, true
		})

		transform := resolver.Chain(
			resolver.Placeholders(map[string]string{}), // ${x} has no value
			counting,
		)

		_, ok := transform("${x}")
		assert.False(t, ok)
		assert.Zero(t, calls)
	})

	t.Run("empty chain is identity", func(t *testing.T) {
		got, ok := resolver.Chain()("name")
		require.True(t, ok)
		assert.Equal(t, "name", got)
	})
}

func TestPlaceholdersWithRegistry(t *testing.T) {
	reg := aliases.New()
	require.NoError(t, reg.Register("target", "${ph}"))

	err := reg.Resolve(resolver.Placeholders(map[string]string{"ph": "realAlias"}))
	require.NoError(t, err)

	assert.False(t, reg.IsAlias("${ph}"))
	assert.True(t, reg.IsAlias("realAlias"))

	canonical, err := reg.CanonicalName("realAlias")
	require.NoError(t, err)
	assert.Equal(t, "target", canonical)
}

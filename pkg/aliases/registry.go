package aliases

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/aliasmap/pkg/errors"
	"github.com/arthur-debert/aliasmap/pkg/logging"
)

// Registry is a thread-safe registry of alias bindings. Every alias maps to
// exactly one canonical name; many aliases may share the same canonical name,
// and an alias may point at another alias, forming a chain that always
// terminates at a canonical name.
type Registry interface {
	// Register binds alias to name. Registering an alias for itself is a
	// no-op that drops any stale binding for that alias.
	Register(name, alias string) error

	// RemoveAlias deletes the binding for alias
	RemoveAlias(alias string) error

	// Get returns the name alias is directly bound to
	Get(alias string) (string, error)

	// IsAlias reports whether name is currently bound as an alias
	IsAlias(name string) bool

	// HasAlias reports whether alias resolves, directly or transitively, to name
	HasAlias(name, alias string) bool

	// Aliases returns every direct and transitive alias of name
	Aliases(name string) []string

	// CanonicalName follows alias bindings from name to the terminal value
	CanonicalName(name string) (string, error)

	// Resolve rewrites every stored binding through the transformer
	Resolve(transform Transformer) error

	// List returns all bound aliases in sorted order
	List() []string

	// Count returns the number of alias bindings
	Count() int

	// Clear removes all bindings from the registry
	Clear()
}

// Transformer rewrites a stored name. The second return value reports
// whether the input resolved to a value at all; false drops the binding
// the name belongs to.
type Transformer func(name string) (string, bool)

// Option configures a Registry created by New
type Option func(*registry)

// WithOverriding controls whether re-registering a bound alias for a
// different name replaces the binding. Overriding is allowed by default;
// with it disabled such a registration fails instead.
func WithOverriding(allowed bool) Option {
	return func(r *registry) {
		r.overriding = allowed
	}
}

// registry is the internal implementation of Registry
type registry struct {
	mu         sync.RWMutex
	entries    map[string]string // alias -> canonical name
	overriding bool
	logger     zerolog.Logger
}

// New creates a new Registry instance
func New(opts ...Option) Registry {
	r := &registry{
		entries:    make(map[string]string),
		overriding: true,
		logger:     logging.GetLogger("aliases"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register binds alias to name
func (r *registry) Register(name, alias string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "'name' must not be empty")
	}
	if alias == "" {
		return errors.New(errors.ErrInvalidInput, "'alias' must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if alias == name {
		delete(r.entries, alias)
		r.logger.Debug().Str("alias", alias).Msg("Alias ignored since it points to same name")
		return nil
	}

	if registered, exists := r.entries[alias]; exists {
		if registered == name {
			// An existing alias - no need to re-register
			return nil
		}
		if !r.overriding {
			return errors.Newf(errors.ErrAliasConflict,
				"cannot define alias '%s' for name '%s': it is already registered for name '%s'",
				alias, name, registered).
				WithDetail("alias", alias).
				WithDetail("registered", registered)
		}
		r.logger.Info().
			Str("alias", alias).
			Str("from", registered).
			Str("to", name).
			Msg("Overriding alias definition")
	}

	// The cycle check and the write must happen under the same lock,
	// otherwise two concurrent registrations can each pass the check and
	// together close a cycle.
	if err := r.checkForAliasCircle(name, alias); err != nil {
		return err
	}

	r.entries[alias] = name
	r.logger.Debug().Str("alias", alias).Str("name", name).Msg("Alias registered")
	return nil
}

// RemoveAlias deletes the binding for alias
func (r *registry) RemoveAlias(alias string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[alias]; !exists {
		return errors.Newf(errors.ErrNotFound, "no alias '%s' registered", alias)
	}

	delete(r.entries, alias)
	return nil
}

// Get returns the name alias is directly bound to
func (r *registry) Get(alias string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, exists := r.entries[alias]
	if !exists {
		return "", errors.Newf(errors.ErrNotFound, "no alias '%s' registered", alias)
	}
	return name, nil
}

// IsAlias reports whether name is currently bound as an alias
func (r *registry) IsAlias(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.entries[name]
	return exists
}

// HasAlias reports whether alias resolves, directly or transitively, to name
func (r *registry) HasAlias(name, alias string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hasAlias(name, alias)
}

// Aliases returns every direct and transitive alias of name. Each alias is
// emitted before its own aliases are discovered; beyond that the order
// follows map iteration and is not guaranteed.
func (r *registry) Aliases(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0)
	r.retrieveAliases(name, &result)
	return result
}

// CanonicalName follows alias bindings from name until a value with no
// further binding is reached. A name that was never registered as an alias
// comes back unchanged.
func (r *registry) CanonicalName(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	canonical := name
	// An acyclic map yields at most one hop per entry; more means the map
	// was corrupted behind the registry's back.
	for i := 0; i <= len(r.entries); i++ {
		resolved, exists := r.entries[canonical]
		if !exists {
			return canonical, nil
		}
		canonical = resolved
	}
	return "", errors.Newf(errors.ErrResolutionLoop,
		"alias chain starting at '%s' did not terminate", name)
}

// List returns all bound aliases in sorted order
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aliases := make([]string, 0, len(r.entries))
	for alias := range r.entries {
		aliases = append(aliases, alias)
	}

	sort.Strings(aliases)
	return aliases
}

// Count returns the number of alias bindings
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Clear removes all bindings from the registry
func (r *registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]string)
}

// checkForAliasCircle fails if registering alias -> name would close a
// cycle, i.e. if name is already a direct or indirect alias for alias.
// Callers must hold the write lock.
func (r *registry) checkForAliasCircle(name, alias string) error {
	if r.hasAlias(alias, name) {
		return errors.Newf(errors.ErrAliasCircle,
			"cannot register alias '%s' for name '%s': circular reference - '%s' is a direct or indirect alias for '%s' already",
			alias, name, name, alias)
	}
	return nil
}

// hasAlias walks the alias graph outward from name with an explicit
// work-list. The visited set keeps the walk terminating even on a map that
// somehow acquired a cycle. Callers must hold at least the read lock.
func (r *registry) hasAlias(name, alias string) bool {
	stack := []string{name}
	visited := map[string]bool{name: true}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for registeredAlias, registeredName := range r.entries {
			if registeredName != current || visited[registeredAlias] {
				continue
			}
			if registeredAlias == alias {
				return true
			}
			visited[registeredAlias] = true
			stack = append(stack, registeredAlias)
		}
	}
	return false
}

// retrieveAliases transitively collects all aliases for name into result.
// Callers must hold at least the read lock.
func (r *registry) retrieveAliases(name string, result *[]string) {
	stack := []string{name}
	visited := map[string]bool{name: true}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for alias, registeredName := range r.entries {
			if registeredName != current || visited[alias] {
				continue
			}
			*result = append(*result, alias)
			visited[alias] = true
			stack = append(stack, alias)
		}
	}
}

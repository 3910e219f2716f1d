package check

import (
	"errors"
	"fmt"
	"sync"
)

// CheckRegistry holds the catalog of checks for a single run.
// Checks are kept in registration order.
type CheckRegistry struct {
	mu     sync.RWMutex
	ids    map[string]struct{}
	checks []Definition
}

// NewRegistry creates a new check registry.
func NewRegistry() *CheckRegistry {
	return &CheckRegistry{
		ids: make(map[string]struct{}),
	}
}

// Register adds a check to the registry.
// Returns error if the definition is incomplete or its ID is already registered.
func (r *CheckRegistry) Register(def Definition) error {
	if err := validateDefinition(def); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[def.ID]; exists {
		return fmt.Errorf("check with ID %s already registered", def.ID)
	}

	r.ids[def.ID] = struct{}{}
	r.checks = append(r.checks, def)

	return nil
}

// MustRegister registers a check and panics if registration fails.
// Use this for check registration in command construction where failure is unrecoverable.
func (r *CheckRegistry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(fmt.Sprintf("failed to register check %s: %v", def.ID, err))
	}
}

// ListAll returns all registered checks in registration order.
func (r *CheckRegistry) ListAll() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Definition, len(r.checks))
	copy(result, r.checks)

	return result
}

func validateDefinition(def Definition) error {
	switch {
	case def.ID == "":
		return errors.New("check ID must not be empty")
	case def.Func == nil:
		return fmt.Errorf("check %s has no function", def.ID)
	case len(def.Tags) == 0:
		return fmt.Errorf("check %s must have at least one tag", def.ID)
	}

	for _, tag := range def.Tags {
		if tag == "" {
			return fmt.Errorf("check %s has an empty tag", def.ID)
		}
	}

	return nil
}

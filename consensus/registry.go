package consensus

import (
	"errors"
	"fmt"
)

var (
	ErrLLMQUnknown       = errors.New("unknown llmq type")
	ErrLLMQAlreadyActive = errors.New("llmq type already active")
	ErrLLMQNotActive     = errors.New("llmq type not active")
	ErrUnknownQuorumName = errors.New("unknown quorum type")
	ErrRotationRequired  = errors.New("llmq type must use rotation")
	ErrRotationForbidden = errors.New("llmq type must not use rotation")
	ErrRoleUnassigned    = errors.New("llmq role not assigned")
	ErrRegistryFrozen    = errors.New("llmq registry is frozen")
)

// Registry holds the quorum types active on one network and the role
// bindings between them. It is mutable until Freeze is called.
type Registry struct {
	active []LLMQParams
	roles  [numRoles]LLMQType
	frozen bool
}

func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.roles {
		r.roles[i] = LLMQNone
	}
	return r
}

// Register activates a catalog quorum type.
func (r *Registry) Register(t LLMQType) error {
	if r.frozen {
		return ErrRegistryFrozen
	}
	if _, ok := r.Lookup(t); ok {
		return fmt.Errorf("%w: %s", ErrLLMQAlreadyActive, t)
	}
	p, ok := CatalogLLMQ(t)
	if !ok {
		return fmt.Errorf("%w: %d", ErrLLMQUnknown, uint8(t))
	}
	r.active = append(r.active, p)
	return nil
}

// MustRegister panics on failure, a duplicate or unknown type in a network
// table is a programming error.
func (r *Registry) MustRegister(types ...LLMQType) {
	for _, t := range types {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) Lookup(t LLMQType) (LLMQParams, bool) {
	for _, p := range r.active {
		if p.Type == t {
			return p, true
		}
	}
	return LLMQParams{}, false
}

// Active returns a copy of the active profiles in registration order.
func (r *Registry) Active() []LLMQParams {
	out := make([]LLMQParams, len(r.active))
	copy(out, r.active)
	return out
}

// TypeByName resolves an active profile by its name, e.g. "llmq_test".
func (r *Registry) TypeByName(name string) (LLMQType, error) {
	for _, p := range r.active {
		if p.Name == name {
			return p.Type, nil
		}
	}
	return LLMQNone, fmt.Errorf("%w: %q", ErrUnknownQuorumName, name)
}

func checkRotation(role LLMQRole, p LLMQParams) error {
	switch role.rotation() {
	case rotationRequired:
		if !p.UseRotation {
			return fmt.Errorf("%w: %s for %s", ErrRotationRequired, p.Name, role)
		}
	case rotationForbidden:
		if p.UseRotation {
			return fmt.Errorf("%w: %s for %s", ErrRotationForbidden, p.Name, role)
		}
	}
	return nil
}

// AssignRole binds role to an active type whose rotation mode suits the role.
func (r *Registry) AssignRole(role LLMQRole, t LLMQType) error {
	if r.frozen {
		return ErrRegistryFrozen
	}
	if role < 0 || role >= numRoles {
		return fmt.Errorf("invalid llmq role %d", int(role))
	}
	p, ok := r.Lookup(t)
	if !ok {
		return fmt.Errorf("%w: %s", ErrLLMQNotActive, t)
	}
	if err := checkRotation(role, p); err != nil {
		return err
	}
	r.roles[role] = t
	return nil
}

func (r *Registry) MustAssignRole(role LLMQRole, t LLMQType) {
	if err := r.AssignRole(role, t); err != nil {
		panic(err)
	}
}

// Role returns the type bound to role, LLMQNone if unbound.
func (r *Registry) Role(role LLMQRole) LLMQType {
	if role < 0 || role >= numRoles {
		return LLMQNone
	}
	return r.roles[role]
}

func (r *Registry) Roles() map[LLMQRole]LLMQType {
	out := make(map[LLMQRole]LLMQType, numRoles)
	for _, role := range Roles {
		out[role] = r.roles[role]
	}
	return out
}

// OverrideProfile rewrites the membership numbers of an active profile.
// The bad votes threshold follows the signing threshold.
func (r *Registry) OverrideProfile(t LLMQType, size, minSize, threshold int32) error {
	if r.frozen {
		return ErrRegistryFrozen
	}
	for i := range r.active {
		if r.active[i].Type != t {
			continue
		}
		r.active[i].Size = size
		r.active[i].MinSize = minSize
		r.active[i].Threshold = threshold
		r.active[i].DKGBadVotesThreshold = threshold
		return nil
	}
	return fmt.Errorf("%w: %s", ErrLLMQNotActive, t)
}

// CheckRoles verifies every role is bound to an active type that satisfies
// the role's rotation rule.
func (r *Registry) CheckRoles() error {
	for _, role := range Roles {
		t := r.roles[role]
		if t == LLMQNone {
			return fmt.Errorf("%w: %s", ErrRoleUnassigned, role)
		}
		p, ok := r.Lookup(t)
		if !ok {
			return fmt.Errorf("%w: %s bound to %s", ErrLLMQNotActive, role, t)
		}
		if err := checkRotation(role, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) Freeze() { r.frozen = true }

func (r *Registry) Frozen() bool { return r.frozen }

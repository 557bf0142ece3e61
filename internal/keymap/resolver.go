package keymap

import (
	"strings"

	"github.com/samber/lo"
)

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys, for help
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = lo.Uniq(append(r.byAction[b.Action], b.Keys...))
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// Hint renders the first key of each action as "key desc" pairs for a
// one-line help footer.
func Hint(bindings []Binding) string {
	parts := lo.Map(bindings, func(b Binding, _ int) string {
		return KeyLabel(b.Keys[0]) + " " + strings.ToLower(b.Description)
	})
	return strings.Join(parts, " · ")
}

// KeyLabel returns the printable name of a key.
func KeyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

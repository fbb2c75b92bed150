package keymap

import "github.com/samber/lo"

// Resolver maps key strings, as reported by tea.KeyMsg.String, to actions.
// When a key appears in several bindings the last one wins.
type Resolver struct {
	bindings map[string]Action
	byAction map[Action][]string // keys in binding order, for help
}

// NewResolver indexes bindings in both directions.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.bindings[k] = b.Action
		}
		r.byAction[b.Action] = lo.Uniq(append(r.byAction[b.Action], b.Keys...))
	}
	return r
}

// Resolve returns the action bound to key, or "" when unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

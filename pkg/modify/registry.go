package modify

import "fmt"

// Strategy is the closed interface every modification strategy implements:
// accepts-this-type?, validate-params, apply.
type Strategy interface {
	CanHandle(modType string) bool
	ValidateParams(params map[string]any) bool
	Apply(scenes []Scene, m Modification) ([]Scene, map[string]any, error)
	Description() string
}

// Registry maps a modification type tag to the first strategy willing to
// handle it. New strategies can be added without touching call sites.
type Registry struct {
	strategies []Strategy
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a strategy to the registry's search order.
func (r *Registry) Register(s Strategy) {
	r.strategies = append(r.strategies, s)
}

// GetStrategy returns the first registered strategy that accepts modType.
func (r *Registry) GetStrategy(modType string) (Strategy, error) {
	for _, s := range r.strategies {
		if s.CanHandle(modType) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("modify: no strategy registered for type %q", modType)
}

// ListStrategies returns each registered strategy's description, in order.
func (r *Registry) ListStrategies() []string {
	out := make([]string, len(r.strategies))
	for i, s := range r.strategies {
		out[i] = s.Description()
	}
	return out
}

// NewDefaultRegistry builds a registry with the four shipped strategies in
// their canonical order. rewriter may be nil; NoopRewriter is used instead.
func NewDefaultRegistry(rewriter LLMRewriter) *Registry {
	if rewriter == nil {
		rewriter = NoopRewriter{}
	}
	r := NewRegistry()
	r.Register(SceneRemovalStrategy{})
	r.Register(ContentReductionStrategy{})
	r.Register(CharacterFocusedStrategy{})
	r.Register(LLMRewriteStrategy{Rewriter: rewriter})
	return r
}

// ApplyModifications runs each modification through the registry in list
// order; each strategy sees the prior strategy's output. Returns the final
// scene stream and one metadata entry per applied modification.
func ApplyModifications(scenes []Scene, mods []Modification, registry *Registry) ([]Scene, []map[string]any, error) {
	current := scenes
	metas := make([]map[string]any, 0, len(mods))

	for _, m := range mods {
		strat, err := registry.GetStrategy(m.Type)
		if err != nil {
			return current, metas, err
		}
		if !strat.ValidateParams(m.Params) {
			return current, metas, fmt.Errorf("modify: invalid params for type %q", m.Type)
		}
		next, meta, err := strat.Apply(current, m)
		if err != nil {
			return current, metas, err
		}
		current = next
		metas = append(metas, meta)
	}

	return current, metas, nil
}

package modify

// LLMRewriter is the capability boundary for scene-level generative
// rewrite. Callers wire a real implementation against an external
// completion service; when none is configured, NoopRewriter reports the
// same verbatim error every caller can match on.
type LLMRewriter interface {
	Rewrite(sceneBody, instruction string) (string, error)
}

// NoopRewriter is the default LLMRewriter: it performs no rewrite and
// reports that no generator is wired up.
type NoopRewriter struct{}

func (NoopRewriter) Rewrite(sceneBody, instruction string) (string, error) {
	return "", errLLMNotConfigured
}

type llmNotConfiguredError struct{}

func (llmNotConfiguredError) Error() string { return "LLM generator not configured" }

var errLLMNotConfigured = llmNotConfiguredError{}

// LLMRewriteStrategy delegates per-scene rewrite to a Rewriter. With the
// default NoopRewriter the modification's metadata carries the unconfigured
// error verbatim under "error" and the scene stream passes through
// unchanged.
type LLMRewriteStrategy struct {
	Rewriter LLMRewriter
}

func (LLMRewriteStrategy) CanHandle(modType string) bool { return modType == "llm_rewrite" }

func (LLMRewriteStrategy) ValidateParams(params map[string]any) bool {
	instruction, _ := params["instruction"].(string)
	return instruction != ""
}

func (s LLMRewriteStrategy) Apply(scenes []Scene, m Modification) ([]Scene, map[string]any, error) {
	instruction, _ := m.Params["instruction"].(string)
	rewriter := s.Rewriter
	if rewriter == nil {
		rewriter = NoopRewriter{}
	}

	out := make([]Scene, len(scenes))
	errorsBySc := map[string]any{}
	rewritten := 0
	for i, sc := range scenes {
		if !inScope(sc.SceneID, m.Scope) {
			out[i] = sc
			continue
		}
		newBody, err := rewriter.Rewrite(sc.Body, instruction)
		if err != nil {
			errorsBySc["error"] = err.Error()
			out[i] = sc
			continue
		}
		rewritten++
		out[i] = Scene{SceneID: sc.SceneID, Heading: sc.Heading, Body: newBody, Characters: sc.Characters, SceneType: sc.SceneType}
	}

	meta := map[string]any{
		"action":           "llm_rewrite",
		"scenes_rewritten": rewritten,
	}
	for k, v := range errorsBySc {
		meta[k] = v
	}
	return out, meta, nil
}

func (LLMRewriteStrategy) Description() string {
	return "llm_rewrite: delegate per-scene rewrite to a configured generator"
}

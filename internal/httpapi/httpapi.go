// Package httpapi implements the scoring HTTP API: /rate_script,
// /what_if, /what_if_advanced, /health, and the version endpoints, as a
// thin fiber/v3 adapter over the scoring, modification, what-if, and
// advisor libraries.
package httpapi

import (
	"github.com/gofiber/fiber/v3"

	"github.com/openreel/ratingcore/pkg/advisor"
	"github.com/openreel/ratingcore/pkg/embed"
	"github.com/openreel/ratingcore/pkg/jobqueue"
	"github.com/openreel/ratingcore/pkg/modify"
	"github.com/openreel/ratingcore/pkg/rating"
	"github.com/openreel/ratingcore/pkg/ratingerrors"
	"github.com/openreel/ratingcore/pkg/segment"
	"github.com/openreel/ratingcore/pkg/store"
	"github.com/openreel/ratingcore/pkg/whatif"
)

const modelVersion = "ratingcore-1"

// Server wires the scoring pipeline, modification registry, job queue,
// and store behind the HTTP surface.
type Server struct {
	Pipeline       *rating.Pipeline
	Registry       *modify.Registry
	Queue          *jobqueue.Queue
	Store          store.Store
	EmbedProvider  embed.Provider
	Profile        *rating.Profile
}

// New builds a fiber app with every route registered.
func (s *Server) New() *fiber.App {
	app := fiber.New()

	app.Get("/health", s.handleHealth)
	app.Post("/rate_script", s.handleRateScript)
	app.Post("/what_if", s.handleWhatIf)
	app.Post("/what_if_advanced", s.handleWhatIfAdvanced)
	app.Post("/advise", s.handleAdvise)

	app.Post("/scripts/:script_id/rate_async", s.handleEnqueueRating)
	app.Get("/jobs/:job_id/status", s.handleJobStatus)

	versions := app.Group("/scripts/:script_id/versions")
	versions.Get("/", s.handleListVersions)
	versions.Get("/:version_number", s.handleGetVersion)
	versions.Post("/", s.handleCreateVersion)
	versions.Post("/:version_number/restore", s.handleRestoreVersion)
	versions.Delete("/:version_number", s.handleDeleteVersion)
	versions.Get("/:version_number/compare/:other_version_number", s.handleCompareVersions)

	return app
}

type healthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

func (s *Server) handleHealth(c fiber.Ctx) error {
	return c.JSON(healthResponse{Status: "ok", ModelLoaded: true})
}

type rateScriptRequest struct {
	Text     string `json:"text"`
	ScriptID string `json:"script_id"`
}

type rateScriptResponse struct {
	ScriptID         string             `json:"script_id"`
	PredictedRating  rating.Rating      `json:"predicted_rating"`
	Reasons          []string           `json:"reasons"`
	AggScores        rating.AggScores   `json:"agg_scores"`
	TopTriggerScenes []rating.SceneScore `json:"top_trigger_scenes"`
	ModelVersion     string             `json:"model_version"`
	TotalScenes      int                `json:"total_scenes"`
}

func (s *Server) handleRateScript(c fiber.Ctx) error {
	var req rateScriptRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "malformed request body"))
	}
	if req.Text == "" {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "text must not be empty"))
	}
	if req.ScriptID == "" {
		req.ScriptID = store.NewID()
	}

	result := s.Pipeline.Rate(req.Text)

	if s.Store != nil {
		_ = s.Store.SaveScript(c.Context(), &store.Script{
			ID:              req.ScriptID,
			Content:         req.Text,
			PredictedRating: result.Rating,
			AggScores:       result.Agg,
			TotalScenes:     result.TotalScenes,
		})
		_ = s.Store.LogRating(c.Context(), store.RatingLogEntry{
			ScriptID:  req.ScriptID,
			Rating:    result.Rating,
			AggScores: result.Agg,
		})
	}

	return c.JSON(rateScriptResponse{
		ScriptID:         req.ScriptID,
		PredictedRating:  result.Rating,
		Reasons:          result.Reasons,
		AggScores:        result.Agg,
		TopTriggerScenes: result.TriggerScenes,
		ModelVersion:     modelVersion,
		TotalScenes:      result.TotalScenes,
	})
}

type whatIfRequest struct {
	ScriptText          string `json:"script_text"`
	ModificationRequest string `json:"modification_request"`
}

type whatIfResponse struct {
	OriginalRating  rating.Rating    `json:"original_rating"`
	ModifiedRating  rating.Rating    `json:"modified_rating"`
	OriginalScores  rating.AggScores `json:"original_scores"`
	ModifiedScores  rating.AggScores `json:"modified_scores"`
	ChangesApplied  []map[string]any `json:"changes_applied"`
	Explanation     string           `json:"explanation"`
	RatingChanged   bool             `json:"rating_changed"`
}

func (s *Server) handleWhatIf(c fiber.Ctx) error {
	var req whatIfRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "malformed request body"))
	}
	if req.ScriptText == "" {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "script_text must not be empty"))
	}

	original := s.Pipeline.Rate(req.ScriptText)

	mods := whatif.Parse(req.ModificationRequest, s.EmbedProvider)
	scenes := modify.FromSegments(segment.Split(req.ScriptText))
	modified, changes, err := modify.ApplyModifications(scenes, mods, s.Registry)
	if err != nil {
		return writeError(c, ratingerrors.Wrap(ratingerrors.InvalidInput, "modification failed", err))
	}

	modifiedResult := s.Pipeline.RateScenes(modify.ToSegments(modified))

	return c.JSON(whatIfResponse{
		OriginalRating: original.Rating,
		ModifiedRating: modifiedResult.Rating,
		OriginalScores: original.Agg,
		ModifiedScores: modifiedResult.Agg,
		ChangesApplied: changes,
		Explanation:    explain(mods),
		RatingChanged:  original.Rating != modifiedResult.Rating,
	})
}

type whatIfAdvancedRequest struct {
	ScriptText    string                   `json:"script_text"`
	Modifications []modify.Modification    `json:"modifications"`
}

func (s *Server) handleWhatIfAdvanced(c fiber.Ctx) error {
	var req whatIfAdvancedRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "malformed request body"))
	}
	if req.ScriptText == "" {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "script_text must not be empty"))
	}

	original := s.Pipeline.Rate(req.ScriptText)

	scenes := modify.FromSegments(segment.Split(req.ScriptText))
	modified, changes, err := modify.ApplyModifications(scenes, req.Modifications, s.Registry)
	if err != nil {
		return writeError(c, ratingerrors.Wrap(ratingerrors.InvalidInput, "modification failed", err))
	}

	modifiedResult := s.Pipeline.RateScenes(modify.ToSegments(modified))

	return c.JSON(whatIfResponse{
		OriginalRating: original.Rating,
		ModifiedRating: modifiedResult.Rating,
		OriginalScores: original.Agg,
		ModifiedScores: modifiedResult.Agg,
		ChangesApplied: changes,
		RatingChanged:  original.Rating != modifiedResult.Rating,
	})
}

type adviseRequest struct {
	ScriptText string        `json:"script_text"`
	Target     rating.Rating `json:"target"`
	Language   string        `json:"language"`
}

func (s *Server) handleAdvise(c fiber.Ctx) error {
	var req adviseRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "malformed request body"))
	}
	if req.ScriptText == "" {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "script_text must not be empty"))
	}

	result := s.Pipeline.Rate(req.ScriptText)
	report := advisor.AdviseWithAlternatives(&result, req.Target, s.Profile, req.Language)
	return c.JSON(report)
}

func explain(mods []modify.Modification) string {
	if len(mods) == 0 {
		return "no recognized modification intent in the request"
	}
	types := make([]string, len(mods))
	for i, m := range mods {
		types[i] = m.Type
	}
	return "applied: " + joinComma(types)
}

func joinComma(xs []string) string {
	out := ""
	for i, x := range xs {
		if i > 0 {
			out += ", "
		}
		out += x
	}
	return out
}

func writeError(c fiber.Ctx, err *ratingerrors.Error) error {
	return c.Status(err.Kind.HTTPStatus()).JSON(fiber.Map{"error": err.Message, "kind": err.Kind})
}

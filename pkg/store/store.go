// Package store implements persistence for scripts, scenes, versions, and
// rating-run history. It is grounded on the original version service's
// create/restore/compare semantics, re-expressed with pgx over Postgres.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openreel/ratingcore/pkg/rating"
)

// NewID generates a new script/job identifier when a caller doesn't supply
// its own (per §6's `script_id?: string` optional field).
func NewID() string { return uuid.NewString() }

// Script is a persisted screenplay and its latest rating result.
type Script struct {
	ID              string
	Title           string
	Content         string
	PredictedRating rating.Rating
	AggScores       rating.AggScores
	TotalScenes     int
	CurrentVersion  int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Version is a point-in-time snapshot of a script, created on save or
// before a restore.
type Version struct {
	ScriptID          string
	VersionNumber     int
	Title             string
	Content           string
	PredictedRating   rating.Rating
	AggScores         rating.AggScores
	TotalScenes       int
	ChangeDescription string
	IsCurrent         bool
	ScenesData        []rating.SceneScore
	CreatedAt         time.Time
}

// RatingLogEntry records one rating run against a script, independent of
// version snapshots, for audit and trend purposes.
type RatingLogEntry struct {
	ScriptID  string
	Rating    rating.Rating
	AggScores rating.AggScores
	CreatedAt time.Time
}

// VersionComparison is the structured diff between two versions of the
// same script.
type VersionComparison struct {
	Version1           VersionSummary      `json:"version1"`
	Version2           VersionSummary      `json:"version2"`
	RatingChanged      bool                `json:"rating_changed"`
	RatingChange       *RatingChange       `json:"rating_change,omitempty"`
	ScenesChanged      int                 `json:"scenes_changed"`
	ScoreChanges       map[string]ScoreDelta `json:"score_changes"`
	ContentDiff        []string            `json:"content_diff"`
	TotalLinesChanged  int                 `json:"total_lines_changed"`
}

type VersionSummary struct {
	Number    int           `json:"number"`
	Rating    rating.Rating `json:"rating"`
	Scenes    int           `json:"scenes"`
	CreatedAt time.Time     `json:"created_at"`
}

type RatingChange struct {
	From rating.Rating `json:"from"`
	To   rating.Rating `json:"to"`
}

type ScoreDelta struct {
	Old    float64 `json:"old"`
	New    float64 `json:"new"`
	Change float64 `json:"change"`
}

// Store is the persistence contract every surface (rating, what-if,
// advisor, HTTP adapter) depends on, independent of the backing engine.
type Store interface {
	GetScript(ctx context.Context, scriptID string) (*Script, error)
	SaveScript(ctx context.Context, s *Script) error

	CreateVersion(ctx context.Context, scriptID string, changeDescription string, makeCurrent bool) (*Version, error)
	GetVersions(ctx context.Context, scriptID string) ([]Version, error)
	GetVersion(ctx context.Context, scriptID string, versionNumber int) (*Version, error)
	RestoreVersion(ctx context.Context, scriptID string, versionNumber int) (*Script, error)
	DeleteVersion(ctx context.Context, scriptID string, versionNumber int) (bool, error)

	LogRating(ctx context.Context, entry RatingLogEntry) error
}

// CompareVersions diffs two versions of the same script — a supplemented
// feature carried over from the original version service, pure and
// engine-independent so it needs no Store implementation to test.
func CompareVersions(v1, v2 Version) VersionComparison {
	diff := unifiedDiff(v1.Content, v2.Content, v1.VersionNumber, v2.VersionNumber)

	ratingChanged := v1.PredictedRating != v2.PredictedRating
	var ratingChange *RatingChange
	if ratingChanged {
		ratingChange = &RatingChange{From: v1.PredictedRating, To: v2.PredictedRating}
	}

	scoreChanges := map[string]ScoreDelta{}
	for _, dim := range rating.DimensionNames {
		oldVal := v1.AggScores.Get(dim)
		newVal := v2.AggScores.Get(dim)
		if abs(oldVal-newVal) > 0.01 {
			scoreChanges[dim] = ScoreDelta{Old: oldVal, New: newVal, Change: newVal - oldVal}
		}
	}

	scenesChanged := abs(float64(len(v1.ScenesData) - len(v2.ScenesData)))

	contentDiff := diff
	if len(contentDiff) > 100 {
		contentDiff = contentDiff[:100]
	}

	return VersionComparison{
		Version1:          VersionSummary{Number: v1.VersionNumber, Rating: v1.PredictedRating, Scenes: v1.TotalScenes, CreatedAt: v1.CreatedAt},
		Version2:          VersionSummary{Number: v2.VersionNumber, Rating: v2.PredictedRating, Scenes: v2.TotalScenes, CreatedAt: v2.CreatedAt},
		RatingChanged:     ratingChanged,
		RatingChange:      ratingChange,
		ScenesChanged:     int(scenesChanged),
		ScoreChanges:      scoreChanges,
		ContentDiff:       diff,
		TotalLinesChanged: len(diff),
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openreel/ratingcore/pkg/rating"
)

// PGStore is the pgx-backed Postgres implementation of Store.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore wraps an existing pgx connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) GetScript(ctx context.Context, scriptID string) (*Script, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, title, content, predicted_rating, agg_scores, total_scenes,
		       current_version, created_at, updated_at
		FROM scripts WHERE id = $1`, scriptID)

	var sc Script
	var aggRaw []byte
	if err := row.Scan(&sc.ID, &sc.Title, &sc.Content, &sc.PredictedRating, &aggRaw,
		&sc.TotalScenes, &sc.CurrentVersion, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("store: script %s not found", scriptID)
		}
		return nil, fmt.Errorf("store: get script: %w", err)
	}
	if err := json.Unmarshal(aggRaw, &sc.AggScores); err != nil {
		return nil, fmt.Errorf("store: decode agg_scores: %w", err)
	}
	return &sc, nil
}

func (s *PGStore) SaveScript(ctx context.Context, sc *Script) error {
	aggRaw, err := json.Marshal(sc.AggScores)
	if err != nil {
		return fmt.Errorf("store: encode agg_scores: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO scripts (id, title, content, predicted_rating, agg_scores, total_scenes, current_version, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			predicted_rating = EXCLUDED.predicted_rating,
			agg_scores = EXCLUDED.agg_scores,
			total_scenes = EXCLUDED.total_scenes,
			current_version = EXCLUDED.current_version,
			updated_at = now()`,
		sc.ID, sc.Title, sc.Content, sc.PredictedRating, aggRaw, sc.TotalScenes, sc.CurrentVersion)
	if err != nil {
		return fmt.Errorf("store: save script: %w", err)
	}
	return nil
}

// CreateVersion snapshots the current script state as a new version,
// demoting any prior current version when makeCurrent is set. Mirrors the
// original version service's create_version transaction exactly.
func (s *PGStore) CreateVersion(ctx context.Context, scriptID string, changeDescription string, makeCurrent bool) (*Version, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: create version: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	script, err := s.GetScript(ctx, scriptID)
	if err != nil {
		return nil, err
	}

	var latestNumber int
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(version_number), 0) FROM script_versions WHERE script_id = $1`, scriptID).Scan(&latestNumber)
	if err != nil {
		return nil, fmt.Errorf("store: create version: latest number: %w", err)
	}
	newNumber := latestNumber + 1

	scenesData, err := s.scenesForScript(ctx, tx, scriptID)
	if err != nil {
		return nil, err
	}
	scenesRaw, err := json.Marshal(scenesData)
	if err != nil {
		return nil, fmt.Errorf("store: encode scenes_data: %w", err)
	}
	aggRaw, err := json.Marshal(script.AggScores)
	if err != nil {
		return nil, fmt.Errorf("store: encode agg_scores: %w", err)
	}

	version := &Version{
		ScriptID:          scriptID,
		VersionNumber:     newNumber,
		Title:             script.Title,
		Content:           script.Content,
		PredictedRating:   script.PredictedRating,
		AggScores:         script.AggScores,
		TotalScenes:       script.TotalScenes,
		ChangeDescription: changeDescription,
		IsCurrent:         makeCurrent,
		ScenesData:        scenesData,
		CreatedAt:         time.Now(),
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO script_versions
			(script_id, version_number, title, content, predicted_rating, agg_scores,
			 total_scenes, change_description, is_current, scenes_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())`,
		scriptID, newNumber, script.Title, script.Content, script.PredictedRating, aggRaw,
		script.TotalScenes, changeDescription, makeCurrent, scenesRaw)
	if err != nil {
		return nil, fmt.Errorf("store: create version: insert: %w", err)
	}

	if makeCurrent {
		if _, err := tx.Exec(ctx, `
			UPDATE script_versions SET is_current = false
			WHERE script_id = $1 AND version_number != $2`, scriptID, newNumber); err != nil {
			return nil, fmt.Errorf("store: create version: demote prior current: %w", err)
		}
		if _, err := tx.Exec(ctx, `
			UPDATE scripts SET current_version = $2, updated_at = now() WHERE id = $1`, scriptID, newNumber); err != nil {
			return nil, fmt.Errorf("store: create version: update script: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("store: create version: commit: %w", err)
	}
	return version, nil
}

func (s *PGStore) scenesForScript(ctx context.Context, tx pgx.Tx, scriptID string) ([]rating.SceneScore, error) {
	rows, err := tx.Query(ctx, `
		SELECT scene_id, heading, violence, gore, sex_act, nudity, profanity, drugs, child_risk, weight, sample_text
		FROM scenes WHERE script_id = $1 ORDER BY scene_id`, scriptID)
	if err != nil {
		return nil, fmt.Errorf("store: scenes for script: %w", err)
	}
	defer rows.Close()

	var scenes []rating.SceneScore
	for rows.Next() {
		var sc rating.SceneScore
		if err := rows.Scan(&sc.SceneID, &sc.Heading,
			&sc.Scores.Violence, &sc.Scores.Gore, &sc.Scores.SexAct, &sc.Scores.Nudity,
			&sc.Scores.Profanity, &sc.Scores.Drugs, &sc.Scores.ChildRisk,
			&sc.Weight, &sc.SampleText); err != nil {
			return nil, fmt.Errorf("store: scan scene row: %w", err)
		}
		scenes = append(scenes, sc)
	}
	return scenes, rows.Err()
}

func (s *PGStore) GetVersions(ctx context.Context, scriptID string) ([]Version, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT version_number, title, content, predicted_rating, agg_scores, total_scenes,
		       change_description, is_current, scenes_data, created_at
		FROM script_versions WHERE script_id = $1 ORDER BY version_number DESC`, scriptID)
	if err != nil {
		return nil, fmt.Errorf("store: get versions: %w", err)
	}
	defer rows.Close()

	var versions []Version
	for rows.Next() {
		v, err := scanVersion(rows, scriptID)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func (s *PGStore) GetVersion(ctx context.Context, scriptID string, versionNumber int) (*Version, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT version_number, title, content, predicted_rating, agg_scores, total_scenes,
		       change_description, is_current, scenes_data, created_at
		FROM script_versions WHERE script_id = $1 AND version_number = $2`, scriptID, versionNumber)

	v, err := scanVersion(row, scriptID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("store: version %d not found for script %s", versionNumber, scriptID)
		}
		return nil, err
	}
	return &v, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVersion(row rowScanner, scriptID string) (Version, error) {
	var v Version
	var aggRaw, scenesRaw []byte
	err := row.Scan(&v.VersionNumber, &v.Title, &v.Content, &v.PredictedRating, &aggRaw,
		&v.TotalScenes, &v.ChangeDescription, &v.IsCurrent, &scenesRaw, &v.CreatedAt)
	if err != nil {
		return Version{}, fmt.Errorf("store: scan version: %w", err)
	}
	v.ScriptID = scriptID
	if err := json.Unmarshal(aggRaw, &v.AggScores); err != nil {
		return Version{}, fmt.Errorf("store: decode version agg_scores: %w", err)
	}
	if len(scenesRaw) > 0 {
		if err := json.Unmarshal(scenesRaw, &v.ScenesData); err != nil {
			return Version{}, fmt.Errorf("store: decode version scenes_data: %w", err)
		}
	}
	return v, nil
}

// RestoreVersion snapshots the current state (so the pre-restore state is
// never lost), then overwrites the script's fields from the target
// version and marks it current. Mirrors the original restore_version.
func (s *PGStore) RestoreVersion(ctx context.Context, scriptID string, versionNumber int) (*Script, error) {
	target, err := s.GetVersion(ctx, scriptID, versionNumber)
	if err != nil {
		return nil, err
	}

	if _, err := s.CreateVersion(ctx, scriptID, fmt.Sprintf("Backup before restore to v%d", versionNumber), false); err != nil {
		return nil, fmt.Errorf("store: restore version: backup current: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: restore version: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	aggRaw, err := json.Marshal(target.AggScores)
	if err != nil {
		return nil, fmt.Errorf("store: encode agg_scores: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE scripts SET title = $2, content = $3, predicted_rating = $4, agg_scores = $5,
		       total_scenes = $6, current_version = $7, updated_at = now()
		WHERE id = $1`,
		scriptID, target.Title, target.Content, target.PredictedRating, aggRaw, target.TotalScenes, versionNumber); err != nil {
		return nil, fmt.Errorf("store: restore version: update script: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE script_versions SET is_current = (version_number = $2) WHERE script_id = $1`,
		scriptID, versionNumber); err != nil {
		return nil, fmt.Errorf("store: restore version: update is_current: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("store: restore version: commit: %w", err)
	}

	return s.GetScript(ctx, scriptID)
}

func (s *PGStore) DeleteVersion(ctx context.Context, scriptID string, versionNumber int) (bool, error) {
	version, err := s.GetVersion(ctx, scriptID, versionNumber)
	if err != nil {
		return false, nil
	}
	if version.IsCurrent {
		return false, fmt.Errorf("store: cannot delete current version")
	}

	tag, err := s.pool.Exec(ctx, `
		DELETE FROM script_versions WHERE script_id = $1 AND version_number = $2`, scriptID, versionNumber)
	if err != nil {
		return false, fmt.Errorf("store: delete version: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PGStore) LogRating(ctx context.Context, entry RatingLogEntry) error {
	aggRaw, err := json.Marshal(entry.AggScores)
	if err != nil {
		return fmt.Errorf("store: encode rating log agg_scores: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO rating_log (script_id, rating, agg_scores, created_at)
		VALUES ($1, $2, $3, now())`, entry.ScriptID, entry.Rating, aggRaw)
	if err != nil {
		return fmt.Errorf("store: log rating: %w", err)
	}
	return nil
}

package httpapi

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/openreel/ratingcore/pkg/ratingerrors"
	"github.com/openreel/ratingcore/pkg/store"
)

func (s *Server) handleListVersions(c fiber.Ctx) error {
	scriptID := c.Params("script_id")
	versions, err := s.Store.GetVersions(c.Context(), scriptID)
	if err != nil {
		return writeError(c, ratingerrors.Wrap(ratingerrors.NotFound, "list versions", err))
	}
	return c.JSON(versions)
}

func (s *Server) handleGetVersion(c fiber.Ctx) error {
	scriptID := c.Params("script_id")
	versionNumber, err := strconv.Atoi(c.Params("version_number"))
	if err != nil {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "version_number must be an integer"))
	}

	version, err := s.Store.GetVersion(c.Context(), scriptID, versionNumber)
	if err != nil {
		return writeError(c, ratingerrors.Wrap(ratingerrors.NotFound, "get version", err))
	}
	return c.JSON(version)
}

type createVersionRequest struct {
	ChangeDescription string `json:"change_description"`
	MakeCurrent        bool   `json:"make_current"`
}

func (s *Server) handleCreateVersion(c fiber.Ctx) error {
	scriptID := c.Params("script_id")
	var req createVersionRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "malformed request body"))
	}

	version, err := s.Store.CreateVersion(c.Context(), scriptID, req.ChangeDescription, req.MakeCurrent)
	if err != nil {
		return writeError(c, ratingerrors.Wrap(ratingerrors.ConflictingState, "create version", err))
	}
	return c.Status(fiber.StatusCreated).JSON(version)
}

func (s *Server) handleRestoreVersion(c fiber.Ctx) error {
	scriptID := c.Params("script_id")
	versionNumber, err := strconv.Atoi(c.Params("version_number"))
	if err != nil {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "version_number must be an integer"))
	}

	script, err := s.Store.RestoreVersion(c.Context(), scriptID, versionNumber)
	if err != nil {
		return writeError(c, ratingerrors.Wrap(ratingerrors.NotFound, "restore version", err))
	}
	return c.JSON(script)
}

func (s *Server) handleDeleteVersion(c fiber.Ctx) error {
	scriptID := c.Params("script_id")
	versionNumber, err := strconv.Atoi(c.Params("version_number"))
	if err != nil {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "version_number must be an integer"))
	}

	deleted, err := s.Store.DeleteVersion(c.Context(), scriptID, versionNumber)
	if err != nil {
		return writeError(c, ratingerrors.Wrap(ratingerrors.ConflictingState, "delete version", err))
	}
	if !deleted {
		return writeError(c, ratingerrors.New(ratingerrors.NotFound, "version not found"))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleCompareVersions(c fiber.Ctx) error {
	scriptID := c.Params("script_id")
	v1Num, err := strconv.Atoi(c.Params("version_number"))
	if err != nil {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "version_number must be an integer"))
	}
	v2Num, err := strconv.Atoi(c.Params("other_version_number"))
	if err != nil {
		return writeError(c, ratingerrors.New(ratingerrors.InvalidInput, "other_version_number must be an integer"))
	}

	v1, err := s.Store.GetVersion(c.Context(), scriptID, v1Num)
	if err != nil {
		return writeError(c, ratingerrors.Wrap(ratingerrors.NotFound, "get version", err))
	}
	v2, err := s.Store.GetVersion(c.Context(), scriptID, v2Num)
	if err != nil {
		return writeError(c, ratingerrors.Wrap(ratingerrors.NotFound, "get version", err))
	}

	comparison := store.CompareVersions(*v1, *v2)
	return c.JSON(comparison)
}

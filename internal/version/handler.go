package version

import (
	"errors"
	"net/http"

	"github.com/kathavichar/api/internal/response"
)

// Handler holds the HTTP handler for the app-version endpoint.
type Handler struct {
	svc *Service
}

// NewHandler creates a new version Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Check godoc
//
//	@Summary		Check app version
//	@Description	Compares the caller's currentVersion against released versions and reports whether an upgrade is needed or forced, with the latest release notes.
//	@Tags			version
//	@Produce		json
//	@Param			currentVersion	query		string	false	"Caller's semantic version, e.g. 1.2.0"
//	@Success		200				{object}	UpgradeInfo
//	@Failure		404				{object}	response.ErrorBody
//	@Failure		500				{object}	response.ErrorBody
//	@Router			/app-version [get]
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Check(r.Context(), r.URL.Query().Get("currentVersion"))
	if errors.Is(err, ErrNoVersions) {
		response.NotFound(w, "version info not found")
		return
	}
	if err != nil {
		response.Upstream(w, err)
		return
	}

	response.OK(w, info)
}

package handler

import (
	"net/http"

	"github.com/luxsports/datahub/internal/api/respond"
	"github.com/luxsports/datahub/internal/workbook"
)

// FileInfo is one workbook of the listing.
type FileInfo struct {
	File   string `json:"file"`
	Team   string `json:"team"`
	Season string `json:"season"`
	Sport  string `json:"sport"`
	Label  string `json:"label"`
}

// ListFiles returns the workbooks of a sport found in DATA_DIR.
// Reads the directory on every request so freshly exported files show up
// without a restart.
// @Summary List workbooks
// @Description Returns the exported team workbooks of a sport, sorted by label.
// @Tags workbooks
// @Produce json
// @Param sport path string true "Sport identifier" Enums(NBA, NCAAM)
// @Success 200 {array} FileInfo
// @Failure 404 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /sports/{sport}/files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.sport(r)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_SPORT", "Unknown sport "+param(r, "sport"))
		return
	}
	infos, err := workbook.ListSport(h.cfg.DataDir, sc.ID)
	if err != nil {
		h.logger.Error("failed to list workbooks", "dir", h.cfg.DataDir, "error", err)
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "LIST_FAILED", "Could not list workbooks", err.Error())
		return
	}
	out := make([]FileInfo, 0, len(infos))
	for _, i := range infos {
		out = append(out, FileInfo{File: i.File, Team: i.Team, Season: i.Season, Sport: i.Sport, Label: i.Label()})
	}
	respond.WriteValue(w, r, out)
}

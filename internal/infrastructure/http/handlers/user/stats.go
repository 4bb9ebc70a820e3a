package user

import (
	"net/http"
	"user-collection-service/internal/infrastructure/http/handlers/dto"
	"user-collection-service/internal/utils"
)

func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.userService.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, "Stats", err)
		return
	}

	_ = utils.WriteJSON(w, http.StatusOK, dto.ToStatsDTO(stats))
}

package user

import (
	"log/slog"
	"net/http"
	"user-collection-service/internal/infrastructure/http/handlers/dto"
	"user-collection-service/internal/utils"
)

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		_ = utils.WriteText(w, http.StatusNotFound, notFoundBody)
		return
	}

	var req dto.UserInput
	if err := decodeBody(r, &req); err != nil {
		h.log.Debug("UpdateUser bad body", slog.Int("user_id", id), slog.Any("err", err))
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid json body")
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, req.ToPatch())
	if err != nil {
		h.writeServiceError(w, "UpdateUser", err)
		return
	}

	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTO(user))
}

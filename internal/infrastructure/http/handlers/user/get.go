package user

import (
	"net/http"
	"user-collection-service/internal/infrastructure/http/handlers/dto"
	"user-collection-service/internal/utils"
)

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		_ = utils.WriteText(w, http.StatusNotFound, notFoundBody)
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "GetUser", err)
		return
	}

	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTO(user))
}

package user

import (
	"net/http"
	"user-collection-service/internal/utils"
)

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		_ = utils.WriteText(w, http.StatusNotFound, notFoundBody)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		h.writeServiceError(w, "DeleteUser", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

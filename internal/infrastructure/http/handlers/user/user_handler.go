package user

import (
	"errors"
	"log/slog"
	"net/http"
	input "user-collection-service/internal/domain/ports/input"
	"user-collection-service/internal/infrastructure/logger"
	"user-collection-service/internal/utils"

	"github.com/go-chi/chi/v5"
)

const notFoundBody = "User not found"

type UserHandler struct {
	userService input.UserInputPort
	log         *logger.Logger
}

func NewUserHandler(userSvc input.UserInputPort, log *logger.Logger) *UserHandler {
	return &UserHandler{userService: userSvc, log: log}
}

// pathID parses the {id} URL parameter with leading-integer semantics.
func pathID(r *http.Request) (int, bool) {
	return utils.ParseLeadingInt(chi.URLParam(r, "id"))
}

// writeServiceError maps service errors onto responses. Unknown ids produce the
// plain-text 404 body clients of this API expect.
func (h *UserHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, utils.ErrUserNotFound):
		_ = utils.WriteText(w, http.StatusNotFound, notFoundBody)
	case errors.Is(err, utils.ErrInvalidSortField):
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
	default:
		h.log.Error(op+" service failed", slog.Any("err", err))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPStatusToCode(http.StatusInternalServerError), utils.ErrInternal.Error())
	}
}

package user

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"user-collection-service/internal/infrastructure/http/handlers/dto"
	"user-collection-service/internal/utils"
)

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserInput
	if err := decodeBody(r, &req); err != nil {
		h.log.Debug("CreateUser bad body", slog.Any("err", err))
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid json body")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.ToNewUser())
	if err != nil {
		h.writeServiceError(w, "CreateUser", err)
		return
	}

	_ = utils.WriteJSON(w, http.StatusCreated, dto.ToUserDTO(user))
}

// decodeBody decodes a JSON object into dst. An empty body is treated as {}.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

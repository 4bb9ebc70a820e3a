package user

import (
	"log/slog"
	"net/http"
	"user-collection-service/internal/domain/models"
	"user-collection-service/internal/infrastructure/http/handlers/dto"
	"user-collection-service/internal/utils"
)

type ListUsersRequest struct {
	MinAge     string
	MaxAge     string
	City       string
	Occupation string
	IsActive   string
	SortBy     string `validate:"sortfield"`
	SortOrder  string
}

func (req ListUsersRequest) toQuery() models.ListQuery {
	sortBy, _ := models.ParseSortField(req.SortBy)
	return models.ListQuery{
		MinAge:     intParam(req.MinAge),
		MaxAge:     intParam(req.MaxAge),
		City:       optional(req.City),
		Occupation: optional(req.Occupation),
		IsActive:   optional(req.IsActive),
		SortBy:     sortBy,
		SortOrder:  models.ParseSortOrder(req.SortOrder),
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := ListUsersRequest{
		MinAge:     q.Get("minAge"),
		MaxAge:     q.Get("maxAge"),
		City:       q.Get("city"),
		Occupation: q.Get("occupation"),
		IsActive:   q.Get("isActive"),
		SortBy:     q.Get("sortBy"),
		SortOrder:  q.Get("sortOrder"),
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ErrInvalidSortField.Error())
		return
	}

	h.log.Debug("ListUsers request", slog.String("query", r.URL.RawQuery))

	users, err := h.userService.ListUsers(r.Context(), req.toQuery())
	if err != nil {
		h.writeServiceError(w, "ListUsers", err)
		return
	}

	_ = utils.WriteJSON(w, http.StatusOK, dto.ToUserDTOs(users))
}

// optional treats an empty query value as absent.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func intParam(v string) *models.IntParam {
	if v == "" {
		return nil
	}
	n, ok := utils.ParseLeadingInt(v)
	return &models.IntParam{Value: n, Valid: ok}
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aniketSingh0310/user-dash/internal/interface/presenter"
	"github.com/aniketSingh0310/user-dash/internal/usecase"
)

// UserHandler adapts HTTP requests to use case calls.
type UserHandler struct {
	usecase   usecase.UserUsecase
	presenter *presenter.UserPresenter
}

func NewUserHandler(usecase usecase.UserUsecase, presenter *presenter.UserPresenter) *UserHandler {
	return &UserHandler{usecase: usecase, presenter: presenter}
}

func (h *UserHandler) ListOrCreate(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		users, err := h.usecase.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, h.presenter.ToList(users))
	case http.MethodPost:
		var input usecase.CreateUserInput
		if err := decodeJSON(r, &input); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			return
		}
		user, err := h.usecase.Create(r.Context(), input)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusCreated, h.presenter.ToResponse(user))
	default:
		writeJSON(w, http.StatusMethodNotAllowed, messageResponse{Message: "method not allowed"})
	}
}

func (h *UserHandler) GetUpdateDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Path)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid user id"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		user, err := h.usecase.GetByID(r.Context(), id)
		if err != nil {
			writeJSON(w, http.StatusNotFound, messageResponse{Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, h.presenter.ToResponse(user))
	case http.MethodPut, http.MethodPatch:
		var input usecase.UpdateUserInput
		if err := decodeJSON(r, &input); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			return
		}
		user, err := h.usecase.Update(r.Context(), id, input)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, h.presenter.ToResponse(user))
	case http.MethodDelete:
		if err := h.usecase.Delete(r.Context(), id); err != nil {
			writeJSON(w, http.StatusNotFound, messageResponse{Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "User deleted successfully"})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, messageResponse{Message: "method not allowed"})
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	return nil
}

func parseID(path string) (int64, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 {
		return 0, errors.New("missing id")
	}
	return strconv.ParseInt(segments[len(segments)-1], 10, 64)
}

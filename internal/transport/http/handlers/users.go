package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/user-directory/internal/application/users"
	"github.com/baechuer/user-directory/internal/domain"
	"github.com/baechuer/user-directory/internal/infrastructure/security"
	"github.com/baechuer/user-directory/internal/logger"
	"github.com/baechuer/user-directory/internal/metrics"
	"github.com/baechuer/user-directory/internal/transport/http/dto"
	"github.com/baechuer/user-directory/internal/transport/http/middleware"
	"github.com/baechuer/user-directory/internal/transport/http/response"
)

type UserHandler struct {
	svc           *users.Service
	secureCookies bool
}

func NewUserHandler(svc *users.Service, secureCookies bool) *UserHandler {
	return &UserHandler{
		svc:           svc,
		secureCookies: secureCookies,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	created, err := h.svc.Register(r.Context(), users.RegisterInput{
		Email:      req.Email,
		Name:       req.Name,
		Password:   req.Password,
		Phone:      req.Phone,
		Profession: req.Profession,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	metrics.RecordRegistration()
	l := logger.WithCtx(r.Context())
	l.Info().
		Str("user_id", created.ID).
		Str("email", created.Email).
		Msg("user_registered")

	response.Created(w, dto.NewUserView(created))
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		metrics.RecordLogin(false)
		response.WriteError(w, r, err)
		return
	}

	metrics.RecordLogin(true)
	l := logger.WithCtx(r.Context())
	l.Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")

	security.SetSessionToken(w, res.Token, h.svc.TokenTTL(), h.secureCookies)

	response.OK(w, dto.LoginView{
		ID:    res.User.ID,
		Email: res.User.Email,
		Name:  res.User.Name,
	})
}

// Logout clears the session cookie unconditionally; with stateless tokens
// there is no server-side session to invalidate.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	security.ClearSessionToken(w, h.secureCookies)
	response.OK(w, dto.MessageView{Message: "logged out"})
}

// Me returns the gate-resolved identity verbatim; the client uses it to
// rehydrate its session state after a page reload.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	u, err := h.svc.GetByID(r.Context(), id.UserID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserView(u))
}

func (h *UserHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.ListAll(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserViews(all))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateUserRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	updated, err := h.svc.UpdateByID(r.Context(), id, req.ToDomain())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	l := logger.WithCtx(r.Context())
	l.Info().
		Str("user_id", updated.ID).
		Msg("user_updated")

	response.OK(w, dto.NewUserView(updated))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.svc.DeleteByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	l := logger.WithCtx(r.Context())
	l.Info().
		Str("user_id", deleted.ID).
		Msg("user_deleted")

	response.OK(w, dto.NewUserView(deleted))
}

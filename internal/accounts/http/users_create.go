package http

import (
	"encoding/json"
	"net/http"

	"github.com/contabr/accounts/internal/accounts/service"
	"github.com/contabr/accounts/pkg/httpx"
	"github.com/contabr/accounts/pkg/slogx"
)

type UsersCreateHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Create User
//	@Description	Creates a user account and mints a bearer token for it.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		service.CreateUserRequest	true	"name, document, email, password, password_confirmation"
//	@Success		201		{object}	httpx.Envelope				"data: user + token"
//	@Failure		422		{object}	httpx.Envelope				"errors: field -> messages"
//	@Failure		400		{object}	httpx.Envelope				"errors: failure message"
//	@Router			/user [post].
func (h *UsersCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	env := httpx.NewEnvelope()

	var req service.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(env, errInvalidBody)
		httpx.WriteEnvelope(w, env)
		return
	}

	user, token, err := h.UserService.Create(ctx, req)
	if err != nil {
		fail(env, err)
		log.Warn("create user failed", "status", env.Status, "err", err)
		httpx.WriteEnvelope(w, env)
		return
	}

	env.Status = http.StatusCreated
	env.Success = true
	env.Data = createdUserResponse{
		userResponse: newUserResponse(user),
		Token:        token,
	}
	httpx.WriteEnvelope(w, env)
}

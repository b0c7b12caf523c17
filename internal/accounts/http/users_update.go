package http

import (
	"encoding/json"
	"net/http"

	"github.com/contabr/accounts/internal/accounts/service"
	"github.com/contabr/accounts/pkg/httpx"
	"github.com/contabr/accounts/pkg/slogx"
)

type UsersUpdateHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Update User
//	@Description	Rewrites name, document and email. The password is not mutable through this path.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User id"
//	@Param			request	body		service.UpdateUserRequest	true	"name, document, email"
//	@Success		200		{object}	httpx.Envelope				"data: user"
//	@Failure		404		{object}	httpx.Envelope				"errors: User not found"
//	@Failure		422		{object}	httpx.Envelope				"errors: field -> messages"
//	@Failure		400		{object}	httpx.Envelope				"errors: failure message"
//	@Router			/user/{id} [put].
func (h *UsersUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	env := httpx.NewEnvelope()

	id, err := pathUserID(r)
	if err != nil {
		fail(env, err)
		httpx.WriteEnvelope(w, env)
		return
	}

	var req service.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(env, errInvalidBody)
		httpx.WriteEnvelope(w, env)
		return
	}

	user, err := h.UserService.Update(ctx, id, req)
	if err != nil {
		fail(env, err)
		log.Warn("update user failed", "user_id", id, "status", env.Status, "err", err)
		httpx.WriteEnvelope(w, env)
		return
	}

	env.Status = http.StatusOK
	env.Success = true
	env.Data = newUserResponse(user)
	httpx.WriteEnvelope(w, env)
}

package http

import (
	"net/http"

	"github.com/contabr/accounts/internal/accounts/service"
	"github.com/contabr/accounts/pkg/httpx"
	"github.com/contabr/accounts/pkg/slogx"
)

type UsersShowHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Show User
//	@Description	Returns a single user account by id.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int				true	"User id"
//	@Success		200	{object}	httpx.Envelope	"data: user"
//	@Failure		404	{object}	httpx.Envelope	"errors: User not found"
//	@Failure		400	{object}	httpx.Envelope	"errors: failure message"
//	@Router			/user/{id} [get].
func (h *UsersShowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	env := httpx.NewEnvelope()

	id, err := pathUserID(r)
	if err != nil {
		fail(env, err)
		httpx.WriteEnvelope(w, env)
		return
	}

	user, err := h.UserService.Get(ctx, id)
	if err != nil {
		fail(env, err)
		log.Warn("show user failed", "user_id", id, "err", err)
		httpx.WriteEnvelope(w, env)
		return
	}

	env.Status = http.StatusOK
	env.Success = true
	env.Data = newUserResponse(user)
	httpx.WriteEnvelope(w, env)
}

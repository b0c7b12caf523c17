package http

import (
	"net/http"

	"github.com/contabr/accounts/internal/accounts/service"
	"github.com/contabr/accounts/pkg/httpx"
	"github.com/contabr/accounts/pkg/slogx"
)

type UsersDeleteHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Delete User
//	@Description	Hard-deletes a user account.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int				true	"User id"
//	@Success		204	{object}	httpx.Envelope	"deleted"
//	@Failure		404	{object}	httpx.Envelope	"errors: User not found"
//	@Failure		400	{object}	httpx.Envelope	"errors: failure message"
//	@Router			/user/{id} [delete].
func (h *UsersDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	env := httpx.NewEnvelope()

	id, err := pathUserID(r)
	if err != nil {
		fail(env, err)
		httpx.WriteEnvelope(w, env)
		return
	}

	if err := h.UserService.Delete(ctx, id); err != nil {
		fail(env, err)
		log.Warn("delete user failed", "user_id", id, "status", env.Status, "err", err)
		httpx.WriteEnvelope(w, env)
		return
	}

	env.Status = http.StatusNoContent
	env.Success = true
	httpx.WriteEnvelope(w, env)
}

package http

import (
	"net/http"
	"strconv"

	"github.com/contabr/accounts/internal/accounts/service"
	"github.com/contabr/accounts/pkg/httpx"
	"github.com/contabr/accounts/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Get the authenticated user
//	@Description	Resolves the bearer token's subject to its user account.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope	"data: user"
//	@Failure		401	{object}	httpx.Envelope	"invalid or missing access token"
//	@Router			/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	env := httpx.NewEnvelope()

	// Subject was injected by AuthnMiddleware.
	id, err := strconv.ParseInt(httpx.UserIDFromCtx(ctx), 10, 64)
	if err != nil || id <= 0 {
		env.Status = http.StatusUnauthorized
		env.Errors = "invalid token subject"
		httpx.WriteEnvelope(w, env)
		return
	}

	user, err := h.UserService.Get(ctx, id)
	if err != nil {
		fail(env, err)
		log.Warn("failed to load authenticated user", "user_id", id, "err", err)
		httpx.WriteEnvelope(w, env)
		return
	}

	env.Status = http.StatusOK
	env.Success = true
	env.Data = newUserResponse(user)
	httpx.WriteEnvelope(w, env)
}

package http

import (
	"net/http"

	"github.com/contabr/accounts/internal/accounts/service"
	"github.com/contabr/accounts/pkg/httpx"
	"github.com/contabr/accounts/pkg/slogx"
)

type UsersListHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		List Users
//	@Description	Returns every user account. No pagination, filtering or sorting.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope	"data: array of users"
//	@Failure		400	{object}	httpx.Envelope	"errors: failure message"
//	@Router			/user [get].
func (h *UsersListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	env := httpx.NewEnvelope()

	users, err := h.UserService.List(ctx)
	if err != nil {
		// any listing failure is reported on the 400 branch
		env.Status = http.StatusBadRequest
		env.Errors = err.Error()
		log.Error("failed to list users", "err", err)
		httpx.WriteEnvelope(w, env)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}

	env.Status = http.StatusOK
	env.Success = true
	env.Data = out
	httpx.WriteEnvelope(w, env)
}

package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/contabr/accounts/internal/accounts/domain"
	"github.com/contabr/accounts/internal/accounts/service"
	"github.com/contabr/accounts/internal/accounts/validation"
	"github.com/contabr/accounts/pkg/httpx"
)

// userNotFoundMessage is the fixed wire message for absent identifiers.
const userNotFoundMessage = "User not found"

var errInvalidBody = errors.New("invalid request body")

// fail maps a tagged failure kind onto the envelope. This is the single
// place that owns the error-kind -> status table:
//
//	validation.Errors   -> 422, field -> messages mapping
//	service.ErrUserNotFound -> 404, fixed message
//	service.ErrQuery    -> envelope keeps its pre-set status (500 default)
//	anything else       -> 400, raw message
func fail(env *httpx.Envelope, err error) {
	env.Success = false

	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		env.Status = http.StatusUnprocessableEntity
		env.Errors = verrs
	case errors.Is(err, service.ErrUserNotFound):
		env.Status = http.StatusNotFound
		env.Errors = userNotFoundMessage
	case errors.Is(err, service.ErrQuery):
		env.Errors = err.Error()
	default:
		env.Status = http.StatusBadRequest
		env.Errors = err.Error()
	}
}

// userResponse is the serialized user representation. The password hash
// never leaves the service.
type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createdUserResponse is userResponse plus the bearer token minted on create.
type createdUserResponse struct {
	userResponse
	Token string `json:"token"`
}

func newUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Document:  u.Document,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// pathUserID parses the {id} path segment. Anything that is not a positive
// integer identifies no user and follows the not-found path.
func pathUserID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrUserNotFound
	}
	return id, nil
}

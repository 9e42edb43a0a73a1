package auth

import (
	"net/http"

	"github.com/developeragencia/visaomais/pkg/response"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrUserInactive           = response.NewError(http.StatusForbidden, "user account is inactive")
	ErrInvalidRole            = response.NewError(http.StatusBadRequest, "invalid role")
	ErrFranchiseRequired      = response.NewError(http.StatusBadRequest, "franchise is required for this role")
	ErrorInvalidToken         = response.NewError(http.StatusUnauthorized, "invalid token")
	ErrorTokenExpired         = response.NewError(http.StatusBadRequest, "token expired or not found")
	ErrInvalidOTP             = response.NewError(http.StatusBadRequest, "invalid otp")
	ErrPasswordSame           = response.NewError(http.StatusBadRequest, "password same as before")
	ErrInvalidFileType        = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge           = response.NewError(http.StatusBadRequest, "file too large")
	ErrFailedToUploadFile     = response.NewError(http.StatusInternalServerError, "failed to upload file")
)

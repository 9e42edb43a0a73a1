package authHandler

import (
	"time"

	"github.com/developeragencia/visaomais/internal/api/auth"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/developeragencia/visaomais/pkg/handlerUtil"
	jwtPkg "github.com/developeragencia/visaomais/pkg/jwt"
	"github.com/developeragencia/visaomais/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) HandleGetProfile(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	user, err := h.authService.User().GetByID(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_profile")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeUserResponse(user))
	}
}

func (h *AuthHandler) HandleGetUserByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			fiber.ErrBadRequest, ctx.Path())
	}

	user, err := h.authService.User().GetByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeUserResponse(user))
	}
}

func (h *AuthHandler) HandleUpdateUser(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update user request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req auth.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.authService.User().UpdateUser(c, userData, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "User updated successfully",
		})
	}
}

func (h *AuthHandler) HandleUpdateProfilePhoto(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	photoFile, err := ctx.FormFile("photo")
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.authService.User().UpdateProfilePhoto(c, userData.ID, photoFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_profile_photo")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *AuthHandler) HandleDeactivateUser(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if userData.Role != entity.RoleAdmin {
		return errHandler.HandleForbidden(ctx, requestID, "Only admins can deactivate users")
	}

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			fiber.ErrBadRequest, ctx.Path())
	}

	if err := h.authService.User().DeactivateUser(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "deactivate_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "User deactivated",
		})
	}
}

func makeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		PhoneNumber:     user.PhoneNumber,
		Role:            user.Role,
		FranchiseID:     user.FranchiseID,
		ProfilePhotoURL: user.ProfilePhotoURL,
		IsActive:        user.IsActive,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

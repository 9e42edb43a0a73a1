package authHandler

import (
	"time"

	"github.com/developeragencia/visaomais/internal/api/auth"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/developeragencia/visaomais/pkg/handlerUtil"
	"github.com/developeragencia/visaomais/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) HandleRegister(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing register request")

	var req auth.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.authService.User().RegisterUser(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "register_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "User registered successfully",
		})
	}
}

func (h *AuthHandler) HandleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing login request")

	var req auth.LoginUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.authService.Auth().Login(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "login_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

package authHandler

import (
	authService "github.com/developeragencia/visaomais/internal/api/auth/service"
	"github.com/developeragencia/visaomais/internal/middleware"
	"github.com/developeragencia/visaomais/pkg/google"
	"github.com/developeragencia/visaomais/pkg/redis"
	"github.com/developeragencia/visaomais/pkg/s3"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.AuthService
	validator      *validator.Validate
	middleware     middleware.Middleware
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	s3Client       s3.ItfS3
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle,
	redisServer redis.IRedis,
	s3Client s3.ItfS3) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		validator:      validate,
		middleware:     middleware,
		googleProvider: googleProvider,
		redisServer:    redisServer,
		s3Client:       s3Client,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/login", h.middleware.NewRateLimiter, h.HandleLogin)
	auth.Get("/login-gl", h.HandleGoogleLogin)
	auth.Get("/callback-gl", h.CallBackFromGoogle)

	users := srv.Group("/users")
	users.Post("/", h.HandleRegister)
	users.Get("/me", h.middleware.NewTokenMiddleware, h.HandleGetProfile)
	users.Get("/:id", h.middleware.NewTokenMiddleware, h.HandleGetUserByID)
	users.Patch("/", h.middleware.NewTokenMiddleware, h.HandleUpdateUser)
	users.Post("/profile-photo", h.middleware.NewTokenMiddleware, h.HandleUpdateProfilePhoto)
	users.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeactivateUser)

	password := srv.Group("/password")
	password.Post("/send-otp", h.middleware.NewRateLimiter, h.HandleSendEmailOTP)
	password.Patch("/reset-password", h.HandleResetPassword)
}

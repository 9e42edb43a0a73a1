package config

import (
	"fmt"
	"os"

	"github.com/developeragencia/visaomais/database/postgres"
	appointmentHandler "github.com/developeragencia/visaomais/internal/api/appointment/handler"
	appointmentRepository "github.com/developeragencia/visaomais/internal/api/appointment/repository"
	appointmentService "github.com/developeragencia/visaomais/internal/api/appointment/service"
	authHandler "github.com/developeragencia/visaomais/internal/api/auth/handler"
	authRepository "github.com/developeragencia/visaomais/internal/api/auth/repository"
	authService "github.com/developeragencia/visaomais/internal/api/auth/service"
	franchiseHandler "github.com/developeragencia/visaomais/internal/api/franchise/handler"
	franchiseRepository "github.com/developeragencia/visaomais/internal/api/franchise/repository"
	franchiseService "github.com/developeragencia/visaomais/internal/api/franchise/service"
	inventoryHandler "github.com/developeragencia/visaomais/internal/api/inventory/handler"
	inventoryRepository "github.com/developeragencia/visaomais/internal/api/inventory/repository"
	inventoryService "github.com/developeragencia/visaomais/internal/api/inventory/service"
	measurementHandler "github.com/developeragencia/visaomais/internal/api/measurement/handler"
	measurementRepository "github.com/developeragencia/visaomais/internal/api/measurement/repository"
	measurementService "github.com/developeragencia/visaomais/internal/api/measurement/service"
	"github.com/developeragencia/visaomais/internal/middleware"
	"github.com/developeragencia/visaomais/internal/optics"
	"github.com/developeragencia/visaomais/pkg/bcrypt"
	"github.com/developeragencia/visaomais/pkg/gemini"
	"github.com/developeragencia/visaomais/pkg/google"
	pigoPkg "github.com/developeragencia/visaomais/pkg/pigo"
	"github.com/developeragencia/visaomais/pkg/redis"
	"github.com/developeragencia/visaomais/pkg/s3"
	"github.com/developeragencia/visaomais/pkg/smtp"
	"github.com/developeragencia/visaomais/pkg/utils"
	"github.com/developeragencia/visaomais/pkg/whatsapp"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	whatsappClient whatsapp.IWhatsappSender
	geminiClient   gemini.IGemini
	faceDetector   pigoPkg.ItfPigo
	s3Client       s3.ItfS3

	reminderCancel context.CancelFunc
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

// WithGeminiClient enables the vision model fallback for landmark detection.
// The server runs without it; the local detector is then the only source.
func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Gemini client unavailable, continuing without vision fallback: %v", err)
			}
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func WithFaceDetector() ServerOption {
	return func(s *Server) error {
		detector, err := pigoPkg.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to load face detection cascades: %v", err)
			}
			return fmt.Errorf("failed to create face detector: %w", err)
		}
		s.faceDetector = detector
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.googleProvider, s.smtpMailer, s.redisServer, s.s3Client, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.googleProvider, s.redisServer, s.s3Client)

	// Franchise Domain
	franchiseRepo := franchiseRepository.New(s.db, s.log)
	franchiseServices := franchiseService.NewFranchiseService(s.log, franchiseRepo, authRepo, s.utils)
	franchiseHandlers := franchiseHandler.New(s.log, s.validator, s.middleware, franchiseServices)

	// Appointment Domain
	appointmentRepo := appointmentRepository.New(s.db, s.log)
	appointmentServices := appointmentService.NewAppointmentService(s.log, appointmentRepo, franchiseRepo, authRepo, s.whatsappClient, s.utils)
	appointmentHandlers := appointmentHandler.New(s.log, s.validator, s.middleware, appointmentServices)

	// Inventory Domain
	inventoryRepo := inventoryRepository.New(s.db, s.log)
	inventoryServices := inventoryService.NewInventoryService(s.log, inventoryRepo, s.s3Client, s.utils)
	inventoryHandlers := inventoryHandler.New(s.log, s.validator, s.middleware, inventoryServices)

	// Measurement Domain
	engine := optics.NewEngine(optics.DefaultCalibration())
	scorer := optics.NewScorer(optics.DefaultQualityThresholds(), optics.GradeByPoints)
	pipeline := optics.NewPipeline(engine, scorer)
	measurementRepo := measurementRepository.New(s.db, s.log)
	measurementServices := measurementService.New(s.log, measurementRepo, authRepo, s.faceDetector, s.geminiClient, pipeline, scorer, s.s3Client, s.utils)
	measurementHandlers := measurementHandler.New(s.log, s.validator, s.middleware, measurementServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, franchiseHandlers, appointmentHandlers, inventoryHandlers, measurementHandlers)

	s.startReminderWorker(appointmentServices)
}

// startReminderWorker launches the appointment reminder loop. It only runs
// when a WhatsApp client is wired; reminders are silently disabled otherwise.
func (s *Server) startReminderWorker(svc appointmentService.IAppointmentService) {
	if s.whatsappClient == nil {
		s.log.Warn("WhatsApp client not configured, appointment reminders disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.reminderCancel = cancel

	go svc.RunReminderWorker(ctx)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.reminderCancel != nil {
			s.reminderCancel()
		}
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

package authService

import (
	"context"
	"mime/multipart"
	"net/url"

	"github.com/developeragencia/visaomais/internal/api/auth"
	authRepository "github.com/developeragencia/visaomais/internal/api/auth/repository"
	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/pkg/bcrypt"
	"github.com/developeragencia/visaomais/pkg/google"
	"github.com/developeragencia/visaomais/pkg/redis"
	"github.com/developeragencia/visaomais/pkg/s3"
	"github.com/developeragencia/visaomais/pkg/smtp"
	"github.com/developeragencia/visaomais/pkg/utils"
	"github.com/sirupsen/logrus"
)

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
	Password() PasswordDomain
	GetRepository() authRepository.Repository
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.CreateUserRequest) error
	GetByID(c context.Context, id string) (entity.User, error)
	UpdateUser(c context.Context, user entity.UserLoginData, req auth.UpdateUserRequest) error
	DeactivateUser(c context.Context, id string) error
	UpdateProfilePhoto(c context.Context, userID string, photoFile *multipart.FileHeader) (*auth.ProfilePhotoResponse, error)
}

type AuthDomain interface {
	Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	LoginGoogle() (*url.URL, error)
	UserLoginGoogle(c context.Context, req auth.LoginUserGoogle) (auth.LoginUserResponse, error)
}

type PasswordDomain interface {
	SendEmailOTP(c context.Context, email string) error
	ResetPassword(c context.Context, req auth.ResetPasswordRequest) error
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	googleProvider google.ItfGoogle
	smtpMailer     smtp.ItfSmtp
	redisServer    redis.IRedis
	s3Client       s3.ItfS3
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils

	userDomain     UserDomain
	authDomain     AuthDomain
	passwordDomain PasswordDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

func (a *authService) Password() PasswordDomain {
	return a.passwordDomain
}

func (a *authService) GetRepository() authRepository.Repository {
	return a.authRepository
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	s3Client    s3.ItfS3
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

type authDomainImpl struct {
	log            *logrus.Logger
	repo           authRepository.Repository
	googleProvider google.ItfGoogle
	bcryptUtils    bcrypt.IBcrypt
}

type passwordDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	smtpMailer  smtp.ItfSmtp
	redisServer redis.IRedis
	bcryptUtils bcrypt.IBcrypt
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	googleProvider google.ItfGoogle,
	smtpMailer smtp.ItfSmtp,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		googleProvider: googleProvider,
		smtpMailer:     smtpMailer,
		redisServer:    redisServer,
		s3Client:       s3Client,
		bcryptUtils:    bcryptUtils,
		utils:          utils,

		userDomain:     &userDomainImpl{log: log, repo: authRepo, s3Client: s3Client, bcryptUtils: bcryptUtils, utils: utils},
		authDomain:     &authDomainImpl{log: log, repo: authRepo, googleProvider: googleProvider, bcryptUtils: bcryptUtils},
		passwordDomain: &passwordDomainImpl{log: log, repo: authRepo, smtpMailer: smtpMailer, redisServer: redisServer, bcryptUtils: bcryptUtils},
	}
}

func MakeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":           user.ID,
		"email":        user.Email,
		"username":     user.Name,
		"role":         user.Role,
		"franchise_id": user.FranchiseID,
	}
}

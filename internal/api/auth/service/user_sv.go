package authService

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/developeragencia/visaomais/internal/api/auth"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *userDomainImpl) RegisterUser(c context.Context, req auth.CreateUserRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if !entity.IsValidRole(req.Role) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"role":       req.Role,
		}).Warn("Invalid role on registration")
		return auth.ErrInvalidRole
	}

	// Staff accounts always belong to a franchise.
	if (req.Role == entity.RoleFranchiseManager || req.Role == entity.RoleAttendant) && req.FranchiseID == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"role":       req.Role,
		}).Warn("Franchise missing for staff role")
		return auth.ErrFranchiseRequired
	}

	_, err = repo.Users.GetByEmail(c, req.Email)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      req.Email,
		}).Warn("Email already registered")
		return auth.ErrEmailAlreadyExists
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check existing email")
		return err
	}

	hashedPass, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	user := entity.User{
		ID:          ULID,
		Email:       req.Email,
		Name:        req.Name,
		Password:    hashedPass,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		FranchiseID: req.FranchiseID,
		IsActive:    true,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
		"role":       user.Role,
	}).Info("User registered")

	return nil
}

func (s *userDomainImpl) GetByID(c context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	user, err := repo.Users.GetByID(c, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    id,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return entity.User{}, err
	}

	return user, nil
}

func (s *userDomainImpl) UpdateUser(c context.Context, userData entity.UserLoginData, req auth.UpdateUserRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	user, err := repo.Users.GetByID(c, userData.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user for update")
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}

	if err := repo.Users.UpdateUser(c, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return err
	}

	return nil
}

func (s *userDomainImpl) DeactivateUser(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Users.DeactivateUser(c, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    id,
			"error":      err.Error(),
		}).Error("Failed to deactivate user")
		return err
	}

	return nil
}

func (s *userDomainImpl) UpdateProfilePhoto(c context.Context, userID string, photoFile *multipart.FileHeader) (*auth.ProfilePhotoResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if err := s.utils.ValidateImageFile(photoFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid profile photo file")
		return nil, auth.ErrInvalidFileType
	}

	photoURL, err := s.s3Client.UploadFile(photoFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload profile photo")
		return nil, auth.ErrFailedToUploadFile
	}

	if err := repo.Users.UpdateProfilePhoto(c, userID, photoURL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist profile photo URL")
		return nil, err
	}

	return &auth.ProfilePhotoResponse{
		ID:              userID,
		ProfilePhotoURL: photoURL,
	}, nil
}

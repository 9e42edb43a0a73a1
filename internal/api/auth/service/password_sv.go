package authService

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/developeragencia/visaomais/internal/api/auth"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const otpExpiration = 5 * time.Minute

func (s *passwordDomainImpl) SendEmailOTP(c context.Context, email string) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Users.GetByEmail(c, email); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      email,
			}).Warn("OTP requested for unknown email")
			return auth.ErrUserNotFound
		}
		return err
	}

	code := fmt.Sprintf("%05d", rand.Intn(100000))

	if err := s.redisServer.SetOTP(c, email, code, otpExpiration); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store OTP in Redis")
		return err
	}

	if err := s.smtpMailer.CreateSmtp(email, code); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send OTP email")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("OTP email sent")

	return nil
}

func (s *passwordDomainImpl) ResetPassword(c context.Context, req auth.ResetPasswordRequest) error {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	storedOTP, err := s.redisServer.GetOTP(c, req.Email)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to get OTP from Redis")
		return auth.ErrorTokenExpired
	}

	if storedOTP != req.Code {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Invalid OTP provided")
		return auth.ErrInvalidOTP
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("New password matches the current one")
		return auth.ErrPasswordSame
	}

	hashedPass, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	if err := repo.Users.UpdateUserPassword(c, req.Email, hashedPass); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user password")
		return err
	}

	return nil
}

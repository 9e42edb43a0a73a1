package authService

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/developeragencia/visaomais/internal/api/auth"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	jwtPkg "github.com/developeragencia/visaomais/pkg/jwt"
	"github.com/sirupsen/logrus"
)

func (s *authDomainImpl) Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if !user.IsActive {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("Login attempt on inactive account")
		return auth.LoginUserResponse{}, auth.ErrUserInactive
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	userData := MakeUserData(user)

	token, expired, err := jwtPkg.Sign(userData, time.Hour*1)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	res := auth.LoginUserResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}

	return res, nil
}

func (s *authDomainImpl) LoginGoogle() (*url.URL, error) {
	gConfig := s.googleProvider.GetConfig()
	URL, err := url.Parse(gConfig.Endpoint.AuthURL)
	if err != nil {
		fmt.Printf("Error parsing URL: %v", err)
		return nil, err
	}

	parameters := url.Values{}
	parameters.Add("client_id", os.Getenv("GOOGLE_CLIENT_ID"))
	parameters.Add("scope", strings.Join(gConfig.Scopes, " "))
	parameters.Add("redirect_uri", gConfig.RedirectURL)
	parameters.Add("response_type", "code")
	parameters.Add("state", os.Getenv("GOOGLE_STATE"))
	URL.RawQuery = parameters.Encode()

	return URL, nil
}

func (s *authDomainImpl) UserLoginGoogle(c context.Context, req auth.LoginUserGoogle) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if !user.IsActive {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("Google login attempt on inactive account")
		return auth.LoginUserResponse{}, auth.ErrUserInactive
	}

	userData := MakeUserData(user)

	token, expired, err := jwtPkg.Sign(userData, time.Hour*1)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	res := auth.LoginUserResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}

	return res, nil
}

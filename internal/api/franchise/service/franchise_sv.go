package franchiseService

import (
	"errors"
	"time"

	"github.com/developeragencia/visaomais/internal/api/franchise"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *franchiseService) CreateFranchise(ctx context.Context, req franchise.CreateFranchiseRequest) (entity.Franchise, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.franchiseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Franchise{}, err
	}

	_, err = repo.Franchises.GetFranchiseByCNPJ(ctx, req.CNPJ)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"cnpj":       req.CNPJ,
		}).Warn("CNPJ already registered")
		return entity.Franchise{}, franchise.ErrCNPJAlreadyRegistered
	}
	if !errors.Is(err, franchise.ErrFranchiseNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check existing CNPJ")
		return entity.Franchise{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Franchise{}, err
	}

	f := entity.Franchise{
		ID:        ULID,
		Name:      req.Name,
		CNPJ:      req.CNPJ,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Status:    entity.FranchiseStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Franchises.CreateFranchise(ctx, f); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create franchise")
		return entity.Franchise{}, franchise.ErrCreateFranchise
	}

	s.log.WithFields(logrus.Fields{
		"request_id":   requestID,
		"franchise_id": f.ID,
	}).Info("Franchise created")

	return f, nil
}

func (s *franchiseService) GetFranchiseByID(ctx context.Context, id string) (entity.Franchise, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.franchiseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Franchise{}, err
	}

	f, err := repo.Franchises.GetFranchiseByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"franchise_id": id,
			"error":        err.Error(),
		}).Error("Failed to get franchise by ID")
		return entity.Franchise{}, err
	}

	return f, nil
}

func (s *franchiseService) GetFranchises(ctx context.Context, status string) ([]entity.Franchise, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.franchiseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	if status == "" {
		return repo.Franchises.GetFranchises(ctx)
	}

	if !entity.IsValidFranchiseStatus(status) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"status":     status,
		}).Warn("Invalid franchise status filter")
		return nil, franchise.ErrInvalidFranchiseStatus
	}

	return repo.Franchises.GetFranchisesByStatus(ctx, status)
}

func (s *franchiseService) GetFranchiseUsers(ctx context.Context, id string) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.franchiseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	if _, err := repo.Franchises.GetFranchiseByID(ctx, id); err != nil {
		return nil, err
	}

	authRepo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create auth client")
		return nil, err
	}

	return authRepo.Users.GetByFranchise(ctx, id)
}

func (s *franchiseService) UpdateFranchise(ctx context.Context, id string, req franchise.UpdateFranchiseRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.franchiseRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	f, err := repo.Franchises.GetFranchiseByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"franchise_id": id,
			"error":        err.Error(),
		}).Error("Failed to get franchise for update")
		return err
	}

	if req.Name != "" {
		f.Name = req.Name
	}
	if req.Email != "" {
		f.Email = req.Email
	}
	if req.Phone != "" {
		f.Phone = req.Phone
	}
	if req.Address != "" {
		f.Address = req.Address
	}
	if req.City != "" {
		f.City = req.City
	}
	if req.State != "" {
		f.State = req.State
	}
	if req.Status != "" {
		if !entity.IsValidFranchiseStatus(req.Status) {
			return franchise.ErrInvalidFranchiseStatus
		}
		f.Status = req.Status
	}

	if err := repo.Franchises.UpdateFranchise(ctx, f); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update franchise")
		return franchise.ErrUpdateFranchise
	}

	return nil
}

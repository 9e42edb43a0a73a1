package franchiseService

import (
	authRepository "github.com/developeragencia/visaomais/internal/api/auth/repository"
	"github.com/developeragencia/visaomais/internal/api/franchise"
	franchiseRepository "github.com/developeragencia/visaomais/internal/api/franchise/repository"
	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IFranchiseService interface {
	CreateFranchise(ctx context.Context, req franchise.CreateFranchiseRequest) (entity.Franchise, error)
	GetFranchiseByID(ctx context.Context, id string) (entity.Franchise, error)
	GetFranchises(ctx context.Context, status string) ([]entity.Franchise, error)
	GetFranchiseUsers(ctx context.Context, id string) ([]entity.User, error)
	UpdateFranchise(ctx context.Context, id string, req franchise.UpdateFranchiseRequest) error
}

type franchiseService struct {
	log                 *logrus.Logger
	franchiseRepository franchiseRepository.Repository
	authRepository      authRepository.Repository
	utils               utils.IUtils
}

func NewFranchiseService(log *logrus.Logger, fr franchiseRepository.Repository, authRepo authRepository.Repository, utils utils.IUtils) IFranchiseService {
	return &franchiseService{
		log:                 log,
		franchiseRepository: fr,
		authRepository:      authRepo,
		utils:               utils,
	}
}

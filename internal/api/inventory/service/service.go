package inventoryService

import (
	"mime/multipart"

	"github.com/developeragencia/visaomais/internal/api/inventory"
	inventoryRepository "github.com/developeragencia/visaomais/internal/api/inventory/repository"
	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/pkg/s3"
	"github.com/developeragencia/visaomais/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IInventoryService interface {
	CreateProduct(ctx context.Context, req inventory.CreateProductRequest, photoFile *multipart.FileHeader) (entity.Product, error)
	GetProductByID(ctx context.Context, id string) (entity.Product, error)
	GetProductsByFranchise(ctx context.Context, franchiseID string, lowStockOnly bool) ([]entity.Product, error)
	UpdateProduct(ctx context.Context, id string, franchiseID string, req inventory.UpdateProductRequest) error
	RegisterMovement(ctx context.Context, productID string, userID string, franchiseID string, req inventory.StockMovementRequest) error
	GetMovementsByProduct(ctx context.Context, productID string) ([]entity.StockMovement, error)
}

type inventoryService struct {
	log                 *logrus.Logger
	inventoryRepository inventoryRepository.Repository
	s3                  s3.ItfS3
	utils               utils.IUtils
}

func NewInventoryService(log *logrus.Logger, ir inventoryRepository.Repository, s3 s3.ItfS3, utils utils.IUtils) IInventoryService {
	return &inventoryService{
		log:                 log,
		inventoryRepository: ir,
		s3:                  s3,
		utils:               utils,
	}
}

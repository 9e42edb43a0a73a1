package inventoryService

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/developeragencia/visaomais/internal/api/inventory"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *inventoryService) CreateProduct(ctx context.Context, req inventory.CreateProductRequest, photoFile *multipart.FileHeader) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.inventoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Product{}, err
	}

	if !entity.IsValidProductCategory(req.Category) {
		return entity.Product{}, inventory.ErrInvalidCategory
	}

	_, err = repo.Products.GetProductBySKU(ctx, req.FranchiseID, req.SKU)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"sku":        req.SKU,
		}).Warn("SKU already exists in franchise")
		return entity.Product{}, inventory.ErrSKUAlreadyExists
	}
	if !errors.Is(err, inventory.ErrProductNotFound) {
		return entity.Product{}, err
	}

	var photoURL string
	if photoFile != nil {
		if err := s.utils.ValidateImageFile(photoFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"filename":   photoFile.Filename,
			}).Warn("Invalid product photo file")
			return entity.Product{}, err
		}

		uploadedFileURL, err := s.s3.UploadFile(photoFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload product photo")
			return entity.Product{}, err
		}
		photoURL = uploadedFileURL
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Product{}, err
	}

	p := entity.Product{
		ID:          ULID,
		FranchiseID: req.FranchiseID,
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Brand:       req.Brand,
		Price:       req.Price,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		PhotoURL:    photoURL,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := repo.Products.CreateProduct(ctx, p); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create product")

		if photoURL != "" {
			if deleteErr := s.s3.DeleteFile(photoURL); deleteErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      deleteErr.Error(),
				}).Error("Failed to delete photo after product creation failure")
			}
		}

		return entity.Product{}, inventory.ErrCreateProduct
	}

	return p, nil
}

func (s *inventoryService) GetProductByID(ctx context.Context, id string) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.inventoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Product{}, err
	}

	return repo.Products.GetProductByID(ctx, id)
}

func (s *inventoryService) GetProductsByFranchise(ctx context.Context, franchiseID string, lowStockOnly bool) ([]entity.Product, error) {
	repo, err := s.inventoryRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	if lowStockOnly {
		return repo.Products.GetLowStockProducts(ctx, franchiseID)
	}

	return repo.Products.GetProductsByFranchise(ctx, franchiseID)
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id string, franchiseID string, req inventory.UpdateProductRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.inventoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	p, err := repo.Products.GetProductByID(ctx, id)
	if err != nil {
		return err
	}

	if franchiseID != "" && p.FranchiseID != franchiseID {
		return inventory.ErrProductNotInFranchise
	}

	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.Brand != "" {
		p.Brand = req.Brand
	}
	if req.Price > 0 {
		p.Price = req.Price
	}
	if req.MinStock > 0 {
		p.MinStock = req.MinStock
	}

	if err := repo.Products.UpdateProduct(ctx, p); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update product")
		return inventory.ErrUpdateProduct
	}

	return nil
}

// RegisterMovement records the movement and adjusts product stock in a single
// transaction.
func (s *inventoryService) RegisterMovement(ctx context.Context, productID string, userID string, franchiseID string, req inventory.StockMovementRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.inventoryRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer repo.Rollback()

	p, err := repo.Products.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}

	if franchiseID != "" && p.FranchiseID != franchiseID {
		return inventory.ErrProductNotInFranchise
	}

	delta := req.Quantity
	switch req.Type {
	case entity.StockMovementIn:
	case entity.StockMovementOut:
		if p.Stock < req.Quantity {
			return inventory.ErrInsufficientStock
		}
		delta = -req.Quantity
	default:
		return inventory.ErrInvalidMovementType
	}

	if err := repo.Products.UpdateProductStock(ctx, productID, delta); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update product stock")
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

	movement := entity.StockMovement{
		ID:        ULID,
		ProductID: productID,
		UserID:    userID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		CreatedAt: time.Now(),
	}

	if err := repo.Movements.CreateMovement(ctx, movement); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create stock movement")
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit stock movement")
		return err
	}

	return nil
}

func (s *inventoryService) GetMovementsByProduct(ctx context.Context, productID string) ([]entity.StockMovement, error) {
	repo, err := s.inventoryRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Movements.GetMovementsByProduct(ctx, productID)
}

package inventoryRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/developeragencia/visaomais/internal/api/inventory"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ProductDB struct {
	ID          sql.NullString  `db:"id"`
	FranchiseID sql.NullString  `db:"franchise_id"`
	SKU         sql.NullString  `db:"sku"`
	Name        sql.NullString  `db:"name"`
	Description sql.NullString  `db:"description"`
	Category    sql.NullString  `db:"category"`
	Brand       sql.NullString  `db:"brand"`
	Price       sql.NullFloat64 `db:"price"`
	Stock       sql.NullInt64   `db:"stock"`
	MinStock    sql.NullInt64   `db:"min_stock"`
	PhotoURL    sql.NullString  `db:"photo_url"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *productRepository) CreateProduct(c context.Context, p entity.Product) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           p.ID,
		"franchise_id": p.FranchiseID,
		"sku":          p.SKU,
		"name":         p.Name,
		"description":  p.Description,
		"category":     p.Category,
		"brand":        p.Brand,
		"price":        p.Price,
		"stock":        p.Stock,
		"min_stock":    p.MinStock,
		"photo_url":    p.PhotoURL,
		"created_at":   time.Now(),
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateProduct named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating product")
		return err
	}

	return nil
}

func (r *productRepository) GetProductByID(c context.Context, id string) (entity.Product, error) {
	return r.getProduct(c, queryGetProductByID, map[string]interface{}{
		"id": id,
	}, "GetProductByID")
}

func (r *productRepository) GetProductBySKU(c context.Context, franchiseID string, sku string) (entity.Product, error) {
	return r.getProduct(c, queryGetProductBySKU, map[string]interface{}{
		"franchise_id": franchiseID,
		"sku":          sku,
	}, "GetProductBySKU")
}

func (r *productRepository) GetProductsByFranchise(c context.Context, franchiseID string) ([]entity.Product, error) {
	return r.selectProducts(c, queryGetProductsByFranchise, map[string]interface{}{
		"franchise_id": franchiseID,
	}, "GetProductsByFranchise")
}

func (r *productRepository) GetLowStockProducts(c context.Context, franchiseID string) ([]entity.Product, error) {
	return r.selectProducts(c, queryGetLowStockProducts, map[string]interface{}{
		"franchise_id": franchiseID,
	}, "GetLowStockProducts")
}

func (r *productRepository) UpdateProduct(c context.Context, p entity.Product) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"brand":       p.Brand,
		"price":       p.Price,
		"min_stock":   p.MinStock,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProduct named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProduct execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return inventory.ErrProductNotFound
	}

	return nil
}

// UpdateProductStock applies delta atomically and fails when the resulting
// stock would go negative.
func (r *productRepository) UpdateProductStock(c context.Context, id string, delta int) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"delta":      delta,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateProductStock, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProductStock named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProductStock execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return inventory.ErrInsufficientStock
	}

	return nil
}

func (r *productRepository) UpdateProductPhoto(c context.Context, id string, photoURL string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"photo_url":  photoURL,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateProductPhoto, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProductPhoto named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProductPhoto execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return inventory.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) getProduct(c context.Context, baseQuery string, argsKV map[string]interface{}, op string) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(c)
	var p ProductDB

	query, args, err := sqlx.Named(baseQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  op,
		}).Error("named query preparation err")
		return entity.Product{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Product{}, inventory.ErrProductNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  op,
		}).Error("execution err")
		return entity.Product{}, err
	}

	return r.makeProduct(p), nil
}

func (r *productRepository) selectProducts(c context.Context, baseQuery string, argsKV map[string]interface{}, op string) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(c)
	var products []ProductDB

	query, args, err := sqlx.Named(baseQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  op,
		}).Error("named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &products, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  op,
		}).Error("execution err")
		return nil, err
	}

	result := make([]entity.Product, 0, len(products))
	for _, p := range products {
		result = append(result, r.makeProduct(p))
	}

	return result, nil
}

func (r *productRepository) makeProduct(p ProductDB) entity.Product {
	return entity.Product{
		ID:          p.ID.String,
		FranchiseID: p.FranchiseID.String,
		SKU:         p.SKU.String,
		Name:        p.Name.String,
		Description: p.Description.String,
		Category:    p.Category.String,
		Brand:       p.Brand.String,
		Price:       p.Price.Float64,
		Stock:       int(p.Stock.Int64),
		MinStock:    int(p.MinStock.Int64),
		PhotoURL:    p.PhotoURL.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

package inventoryRepository

import (
	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Products:  &productRepository{q: sqlExecutor, log: r.log},
		Movements: &movementRepository{q: sqlExecutor, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Products interface {
		CreateProduct(c context.Context, product entity.Product) error
		GetProductByID(c context.Context, id string) (entity.Product, error)
		GetProductBySKU(c context.Context, franchiseID string, sku string) (entity.Product, error)
		GetProductsByFranchise(c context.Context, franchiseID string) ([]entity.Product, error)
		GetLowStockProducts(c context.Context, franchiseID string) ([]entity.Product, error)
		UpdateProduct(c context.Context, product entity.Product) error
		UpdateProductStock(c context.Context, id string, delta int) error
		UpdateProductPhoto(c context.Context, id string, photoURL string) error
	}

	Movements interface {
		CreateMovement(c context.Context, movement entity.StockMovement) error
		GetMovementsByProduct(c context.Context, productID string) ([]entity.StockMovement, error)
	}

	Commit   func() error
	Rollback func() error
}

type productRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type movementRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

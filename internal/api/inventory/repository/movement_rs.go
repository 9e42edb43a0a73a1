package inventoryRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type StockMovementDB struct {
	ID        sql.NullString `db:"id"`
	ProductID sql.NullString `db:"product_id"`
	UserID    sql.NullString `db:"user_id"`
	Type      sql.NullString `db:"type"`
	Quantity  sql.NullInt64  `db:"quantity"`
	Reason    sql.NullString `db:"reason"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *movementRepository) CreateMovement(c context.Context, m entity.StockMovement) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         m.ID,
		"product_id": m.ProductID,
		"user_id":    m.UserID,
		"type":       m.Type,
		"quantity":   m.Quantity,
		"reason":     m.Reason,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateMovement, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateMovement named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating stock movement")
		return err
	}

	return nil
}

func (r *movementRepository) GetMovementsByProduct(c context.Context, productID string) ([]entity.StockMovement, error) {
	requestID := contextPkg.GetRequestID(c)
	var movements []StockMovementDB

	argsKV := map[string]interface{}{
		"product_id": productID,
	}

	query, args, err := sqlx.Named(queryGetMovementsByProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMovementsByProduct named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &movements, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMovementsByProduct execution err")
		return nil, err
	}

	result := make([]entity.StockMovement, 0, len(movements))
	for _, m := range movements {
		result = append(result, entity.StockMovement{
			ID:        m.ID.String,
			ProductID: m.ProductID.String,
			UserID:    m.UserID.String,
			Type:      m.Type.String,
			Quantity:  int(m.Quantity.Int64),
			Reason:    m.Reason.String,
			CreatedAt: m.CreatedAt,
		})
	}

	return result, nil
}

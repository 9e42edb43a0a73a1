package franchiseRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/developeragencia/visaomais/internal/api/franchise"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type FranchiseDB struct {
	ID        sql.NullString `db:"id"`
	Name      sql.NullString `db:"name"`
	CNPJ      sql.NullString `db:"cnpj"`
	Email     sql.NullString `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Address   sql.NullString `db:"address"`
	City      sql.NullString `db:"city"`
	State     sql.NullString `db:"state"`
	Status    sql.NullString `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *franchiseRepository) CreateFranchise(c context.Context, f entity.Franchise) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         f.ID,
		"name":       f.Name,
		"cnpj":       f.CNPJ,
		"email":      f.Email,
		"phone":      f.Phone,
		"address":    f.Address,
		"city":       f.City,
		"state":      f.State,
		"status":     f.Status,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateFranchise, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateFranchise named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating franchise")
		return err
	}

	return nil
}

func (r *franchiseRepository) GetFranchiseByID(c context.Context, id string) (entity.Franchise, error) {
	requestID := contextPkg.GetRequestID(c)
	var f FranchiseDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetFranchiseByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFranchiseByID named query preparation err")
		return entity.Franchise{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Franchise{}, franchise.ErrFranchiseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFranchiseByID execution err")
		return entity.Franchise{}, err
	}

	return r.makeFranchise(f), nil
}

func (r *franchiseRepository) GetFranchiseByCNPJ(c context.Context, cnpj string) (entity.Franchise, error) {
	requestID := contextPkg.GetRequestID(c)
	var f FranchiseDB

	argsKV := map[string]interface{}{
		"cnpj": cnpj,
	}

	query, args, err := sqlx.Named(queryGetFranchiseByCNPJ, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFranchiseByCNPJ named query preparation err")
		return entity.Franchise{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Franchise{}, franchise.ErrFranchiseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFranchiseByCNPJ execution err")
		return entity.Franchise{}, err
	}

	return r.makeFranchise(f), nil
}

func (r *franchiseRepository) GetFranchises(c context.Context) ([]entity.Franchise, error) {
	requestID := contextPkg.GetRequestID(c)
	var franchises []FranchiseDB

	query := r.q.Rebind(queryGetFranchises)

	if err := r.q.SelectContext(c, &franchises, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFranchises execution err")
		return nil, err
	}

	result := make([]entity.Franchise, 0, len(franchises))
	for _, f := range franchises {
		result = append(result, r.makeFranchise(f))
	}

	return result, nil
}

func (r *franchiseRepository) GetFranchisesByStatus(c context.Context, status string) ([]entity.Franchise, error) {
	requestID := contextPkg.GetRequestID(c)
	var franchises []FranchiseDB

	argsKV := map[string]interface{}{
		"status": status,
	}

	query, args, err := sqlx.Named(queryGetFranchisesByStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFranchisesByStatus named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &franchises, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFranchisesByStatus execution err")
		return nil, err
	}

	result := make([]entity.Franchise, 0, len(franchises))
	for _, f := range franchises {
		result = append(result, r.makeFranchise(f))
	}

	return result, nil
}

func (r *franchiseRepository) UpdateFranchise(c context.Context, f entity.Franchise) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         f.ID,
		"name":       f.Name,
		"email":      f.Email,
		"phone":      f.Phone,
		"address":    f.Address,
		"city":       f.City,
		"state":      f.State,
		"status":     f.Status,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateFranchise, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateFranchise named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateFranchise execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateFranchise rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateFranchise no rows affected")
		return franchise.ErrFranchiseNotFound
	}

	return nil
}

func (r *franchiseRepository) makeFranchise(f FranchiseDB) entity.Franchise {
	return entity.Franchise{
		ID:        f.ID.String,
		Name:      f.Name.String,
		CNPJ:      f.CNPJ.String,
		Email:     f.Email.String,
		Phone:     f.Phone.String,
		Address:   f.Address.String,
		City:      f.City.String,
		State:     f.State.String,
		Status:    f.Status.String,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

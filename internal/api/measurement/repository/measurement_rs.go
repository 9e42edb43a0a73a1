package measurementRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/developeragencia/visaomais/internal/api/measurement"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type MeasurementDB struct {
	ID         sql.NullString  `db:"id"`
	ClientID   sql.NullString  `db:"client_id"`
	UserID     sql.NullString  `db:"user_id"`
	PhotoURL   sql.NullString  `db:"photo_url"`
	Source     sql.NullString  `db:"source"`
	DP         sql.NullFloat64 `db:"dp"`
	DPNLeft    sql.NullFloat64 `db:"dpn_left"`
	DPNRight   sql.NullFloat64 `db:"dpn_right"`
	APLeft     sql.NullFloat64 `db:"ap_left"`
	APRight    sql.NullFloat64 `db:"ap_right"`
	Quality    sql.NullString  `db:"quality"`
	Confidence sql.NullFloat64 `db:"confidence"`
	Warnings   sql.NullString  `db:"warnings"`
	Accepted   sql.NullBool    `db:"accepted"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (r *measurementRepository) CreateMeasurement(c context.Context, m entity.FacialMeasurement) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         m.ID,
		"client_id":  m.ClientID,
		"user_id":    m.UserID,
		"photo_url":  m.PhotoURL,
		"source":     m.Source,
		"dp":         m.DP,
		"dpn_left":   m.DPNLeft,
		"dpn_right":  m.DPNRight,
		"ap_left":    m.APLeft,
		"ap_right":   m.APRight,
		"quality":    m.Quality,
		"confidence": m.Confidence,
		"warnings":   m.Warnings,
		"accepted":   m.Accepted,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateMeasurement, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateMeasurement named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating measurement")
		return err
	}

	return nil
}

func (r *measurementRepository) GetMeasurementByID(c context.Context, id string) (entity.FacialMeasurement, error) {
	return r.getMeasurement(c, queryGetMeasurementByID, map[string]interface{}{
		"id": id,
	}, "GetMeasurementByID")
}

func (r *measurementRepository) GetLatestAcceptedByClient(c context.Context, clientID string) (entity.FacialMeasurement, error) {
	return r.getMeasurement(c, queryGetLatestAcceptedByClient, map[string]interface{}{
		"client_id": clientID,
	}, "GetLatestAcceptedByClient")
}

func (r *measurementRepository) getMeasurement(c context.Context, baseQuery string, argsKV map[string]interface{}, op string) (entity.FacialMeasurement, error) {
	requestID := contextPkg.GetRequestID(c)
	var m MeasurementDB

	query, args, err := sqlx.Named(baseQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return entity.FacialMeasurement{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.FacialMeasurement{}, measurement.ErrMeasurementNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return entity.FacialMeasurement{}, err
	}

	return r.makeMeasurement(m), nil
}

func (r *measurementRepository) GetMeasurementsByClient(c context.Context, clientID string) ([]entity.FacialMeasurement, error) {
	requestID := contextPkg.GetRequestID(c)
	var measurements []MeasurementDB

	argsKV := map[string]interface{}{
		"client_id": clientID,
	}

	query, args, err := sqlx.Named(queryGetMeasurementsByClient, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMeasurementsByClient named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &measurements, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMeasurementsByClient execution err")
		return nil, err
	}

	result := make([]entity.FacialMeasurement, 0, len(measurements))
	for _, m := range measurements {
		result = append(result, r.makeMeasurement(m))
	}

	return result, nil
}

func (r *measurementRepository) makeMeasurement(m MeasurementDB) entity.FacialMeasurement {
	return entity.FacialMeasurement{
		ID:         m.ID.String,
		ClientID:   m.ClientID.String,
		UserID:     m.UserID.String,
		PhotoURL:   m.PhotoURL.String,
		Source:     m.Source.String,
		DP:         m.DP.Float64,
		DPNLeft:    m.DPNLeft.Float64,
		DPNRight:   m.DPNRight.Float64,
		APLeft:     m.APLeft.Float64,
		APRight:    m.APRight.Float64,
		Quality:    m.Quality.String,
		Confidence: m.Confidence.Float64,
		Warnings:   m.Warnings.String,
		Accepted:   m.Accepted.Bool,
		CreatedAt:  m.CreatedAt,
	}
}

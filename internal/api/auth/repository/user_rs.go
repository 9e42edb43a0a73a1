package authRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/developeragencia/visaomais/internal/api/auth"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID              sql.NullString `db:"id"`
	Email           sql.NullString `db:"email"`
	Name            sql.NullString `db:"name"`
	Password        sql.NullString `db:"password"`
	PhoneNumber     sql.NullString `db:"phone_number"`
	Role            sql.NullString `db:"role"`
	FranchiseID     sql.NullString `db:"franchise_id"`
	ProfilePhotoURL sql.NullString `db:"profile_photo_url"`
	IsActive        sql.NullBool   `db:"is_active"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r *userRepository) CreateUser(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           user.ID,
		"email":        user.Email,
		"name":         user.Name,
		"password":     user.Password,
		"phone_number": user.PhoneNumber,
		"role":         user.Role,
		"franchise_id": newNullString(user.FranchiseID),
		"is_active":    true,
		"created_at":   time.Now(),
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateUser named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var user UserDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.User{}, err
	}
	query = r.q.Rebind(query)

	if err := sqlx.GetContext(ctx, r.q, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.User{}, err
	}

	return r.makeUser(user), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var user UserDB

	argsKV := map[string]interface{}{
		"email": email,
	}

	query, args, err := sqlx.Named(queryGetByEmail, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByEmail named query preparation err")
		return entity.User{}, err
	}
	query = r.q.Rebind(query)

	if err := sqlx.GetContext(ctx, r.q, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByEmail execution err")
		return entity.User{}, err
	}

	return r.makeUser(user), nil
}

func (r *userRepository) GetByFranchise(ctx context.Context, franchiseID string) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var users []UserDB

	argsKV := map[string]interface{}{
		"franchise_id": franchiseID,
	}

	query, args, err := sqlx.Named(queryGetByFranchise, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByFranchise named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := sqlx.SelectContext(ctx, r.q, &users, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByFranchise execution err")
		return nil, err
	}

	result := make([]entity.User, 0, len(users))
	for _, user := range users {
		result = append(result, r.makeUser(user))
	}

	return result, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           user.ID,
		"name":         user.Name,
		"phone_number": user.PhoneNumber,
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser execution err")
		return err
	}

	return checkRowsAffected(result, auth.ErrUserNotFound)
}

func (r *userRepository) UpdateUserPassword(ctx context.Context, email string, password string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"email":      email,
		"password":   password,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateUserPassword, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUserPassword named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUserPassword execution err")
		return err
	}

	return checkRowsAffected(result, auth.ErrUserNotFound)
}

func (r *userRepository) UpdateProfilePhoto(ctx context.Context, id string, photoURL string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":                id,
		"profile_photo_url": photoURL,
		"updated_at":        time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateProfilePhoto, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProfilePhoto named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProfilePhoto execution err")
		return err
	}

	return checkRowsAffected(result, auth.ErrUserNotFound)
}

func (r *userRepository) DeactivateUser(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryDeactivateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeactivateUser named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeactivateUser execution err")
		return err
	}

	return checkRowsAffected(result, auth.ErrUserNotFound)
}

func (r *userRepository) makeUser(user UserDB) entity.User {
	return entity.User{
		ID:              user.ID.String,
		Email:           user.Email.String,
		Name:            user.Name.String,
		Password:        user.Password.String,
		PhoneNumber:     user.PhoneNumber.String,
		Role:            user.Role.String,
		FranchiseID:     user.FranchiseID.String,
		ProfilePhotoURL: user.ProfilePhotoURL.String,
		IsActive:        user.IsActive.Bool,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

func newNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func checkRowsAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}

package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
)

const userColumns = `id, email, password_hash, name, wechat_id, preferred_name, bio, gender,
	contact_number, current_address, permanent_address, birthday, public, role, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (entity.User, error) {
	var (
		u        entity.User
		birthday pgtype.Date
		role     string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.WechatID, &u.PreferredName, &u.Bio, &u.Gender,
		&u.ContactNumber, &u.CurrentAddress, &u.PermanentAddress, &birthday, &u.Public, &role,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return entity.User{}, mapErr(err)
	}
	u.Birthday = dateFromPg(birthday)
	u.Role = entity.Role(role)
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.Role == "" {
		u.Role = entity.RoleUser
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, name, wechat_id, preferred_name, bio, gender,
			contact_number, current_address, permanent_address, birthday, public, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`, u.ID, u.Email, u.Password, u.Name, u.WechatID, u.PreferredName, u.Bio, u.Gender,
		u.ContactNumber, u.CurrentAddress, u.PermanentAddress, dateToPg(u.Birthday), u.Public, string(u.Role))

	return mapErr(row.Scan(&u.CreatedAt, &u.UpdatedAt))
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "email = $1 AND email <> ''", email)
}

func (r *UserRepository) GetPublic(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, "id = $1 AND public = true", id)
}

func (r *UserRepository) GetRole(ctx context.Context, id string) (entity.Role, error) {
	var role string
	if err := r.pool.QueryRow(ctx, `SELECT role FROM users WHERE id = $1`, id).Scan(&role); err != nil {
		return "", mapErr(err)
	}
	return entity.Role(role), nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now().UTC()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $1, password_hash = $2, name = $3, wechat_id = $4, preferred_name = $5, bio = $6,
			gender = $7, contact_number = $8, current_address = $9, permanent_address = $10,
			birthday = $11, public = $12, role = $13, updated_at = $14
		WHERE id = $15
	`, u.Email, u.Password, u.Name, u.WechatID, u.PreferredName, u.Bio,
		u.Gender, u.ContactNumber, u.CurrentAddress, u.PermanentAddress,
		dateToPg(u.Birthday), u.Public, string(u.Role), u.UpdatedAt, u.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, p listing.Params) (listing.Page[entity.User], error) {
	return runList(ctx, r.pool, repository.UserList, p, scanUser)
}

var _ repository.UserRepository = (*UserRepository)(nil)

package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/peopledesk/users-api/internal/core/domain"
	"github.com/peopledesk/users-api/internal/core/ports"
)

// UserRepository is the gorm implementation of ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Search composes one WHERE clause per provided filter; absent filters add
// no clause, so any subset combines with logical AND.
func (r *UserRepository) Search(ctx context.Context, f ports.SearchFilter) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{})

	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	if f.Email != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(f.Email)+"%")
	}
	if f.JobTitle != "" {
		q = q.Where("LOWER(job_title) = ?", strings.ToLower(f.JobTitle))
	}
	if f.Role != nil {
		q = q.Where("role = ?", string(*f.Role))
	}
	if f.Active != nil {
		q = q.Where("active = ?", *f.Active)
	}

	var users []domain.User
	if err := q.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) EmailInUse(ctx context.Context, email string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// groupCount scans one GROUP BY dimension into label/count pairs.
type groupCount struct {
	Label string
	N     int64
}

func (r *UserRepository) CountByJobTitle(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "job_title")
}

func (r *UserRepository) CountByRole(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "role")
}

func (r *UserRepository) CountByActive(ctx context.Context) (map[bool]int64, error) {
	var rows []struct {
		Label bool
		N     int64
	}
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Select("active AS label, COUNT(*) AS n").
		Group("active").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[bool]int64, len(rows))
	for _, row := range rows {
		out[row.Label] = row.N
	}
	return out, nil
}

func (r *UserRepository) countGrouped(ctx context.Context, column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Select(column + " AS label, COUNT(*) AS n").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Label] = row.N
	}
	return out, nil
}

// translate maps store-level errors onto domain errors. The unique index on
// LOWER(email) is the only unique constraint on the table, so a duplicated
// key can only mean an email collision.
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailTaken
	}
	return err
}

package repository

import (
	"time"

	"github.com/dormhub/dormhub-go/internal/domain/dorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DormRepo interface {
	CreateDorm(d *dorm.Dorm) error
	GetDormByID(id uint) (dorm.Dorm, error)
	// GetDormByIDForUpdate locks the row for the rest of the transaction.
	GetDormByIDForUpdate(id uint) (dorm.Dorm, error)
	GetDormByCode(code string) (dorm.Dorm, error)
	ListDorms() ([]dorm.Dorm, error)
	UpdateDorm(d *dorm.Dorm) error
	DeleteDorm(id uint) error
	UpdateOccupancy(dormID uint, occupancy int) error
	SetAdminID(dormID uint, adminID *uint) error

	CreateDismissal(p *dorm.DismissalProcess) error
	GetPendingDismissal(dormID uint) (dorm.DismissalProcess, error)
	UpdateDismissal(p *dorm.DismissalProcess) error

	WithTx(tx *gorm.DB) DormRepo
}

type DBDormRepo struct {
	db *gorm.DB
}

func NewDormRepo(db *gorm.DB) *DBDormRepo {
	return &DBDormRepo{
		db: db,
	}
}

func (r *DBDormRepo) CreateDorm(d *dorm.Dorm) error {
	return r.db.Create(d).Error
}

func (r *DBDormRepo) GetDormByID(id uint) (dorm.Dorm, error) {
	var d dorm.Dorm
	err := r.db.First(&d, id).Error
	return d, err
}

func (r *DBDormRepo) GetDormByIDForUpdate(id uint) (dorm.Dorm, error) {
	var d dorm.Dorm
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&d, id).Error
	return d, err
}

func (r *DBDormRepo) GetDormByCode(code string) (dorm.Dorm, error) {
	var d dorm.Dorm
	err := r.db.First(&d, "dorm_code = ?", code).Error
	return d, err
}

func (r *DBDormRepo) ListDorms() ([]dorm.Dorm, error) {
	var dorms []dorm.Dorm
	err := r.db.Find(&dorms).Error
	return dorms, err
}

func (r *DBDormRepo) UpdateDorm(d *dorm.Dorm) error {
	return r.db.Save(d).Error
}

func (r *DBDormRepo) DeleteDorm(id uint) error {
	return r.db.Delete(&dorm.Dorm{}, id).Error
}

func (r *DBDormRepo) UpdateOccupancy(dormID uint, occupancy int) error {
	return r.db.Model(&dorm.Dorm{}).
		Where("dorm_id = ?", dormID).
		Update("current_occupancy", occupancy).Error
}

func (r *DBDormRepo) SetAdminID(dormID uint, adminID *uint) error {
	return r.db.Model(&dorm.Dorm{}).
		Where("dorm_id = ?", dormID).
		Update("admin_id", adminID).Error
}

func (r *DBDormRepo) CreateDismissal(p *dorm.DismissalProcess) error {
	return r.db.Create(p).Error
}

func (r *DBDormRepo) GetPendingDismissal(dormID uint) (dorm.DismissalProcess, error) {
	var p dorm.DismissalProcess
	err := r.db.First(&p, "dorm_id = ? AND status = ?", dormID, dorm.DismissalStatusPending).Error
	return p, err
}

func (r *DBDormRepo) UpdateDismissal(p *dorm.DismissalProcess) error {
	if p.Status != string(dorm.DismissalStatusPending) && p.CompletedAt == nil {
		now := time.Now()
		p.CompletedAt = &now
	}
	return r.db.Save(p).Error
}

func (r *DBDormRepo) WithTx(tx *gorm.DB) DormRepo {
	if tx == nil {
		return r
	}
	return &DBDormRepo{
		db: tx,
	}
}

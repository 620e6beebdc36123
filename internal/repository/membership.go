package repository

import (
	"github.com/dormhub/dormhub-go/internal/domain/membership"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepo interface {
	CreateMembership(m *membership.Membership) error
	GetMembershipByID(id uint) (membership.Membership, error)
	// GetMembershipByIDForUpdate locks the row for the rest of the transaction.
	GetMembershipByIDForUpdate(id uint) (membership.Membership, error)
	GetByUserAndDorm(uid, dormID uint) (membership.Membership, error)
	GetByInviteCode(code string) (membership.Membership, error)
	UpdateMembership(m *membership.Membership) error
	DeleteMembership(id uint) error
	ListByDorm(dormID uint) ([]membership.Membership, error)
	ListByUser(uid uint) ([]membership.Membership, error)
	CountActiveByDorm(dormID uint) (int64, error)
	CountActiveAdminsByDorm(dormID uint) (int64, error)
	CountActiveByUser(uid uint) (int64, error)
	// GetActiveAdmin returns the first active admin-role membership of the
	// dorm; the dorm's cached admin pointer is derived from it.
	GetActiveAdmin(dormID uint) (membership.Membership, error)
	// FindAlternativeAdmin returns an active membership of the dorm other
	// than the excluded one, preferring admin-role members.
	FindAlternativeAdmin(dormID, excludeMembershipID uint) (membership.Membership, error)
	WithTx(tx *gorm.DB) MembershipRepo
}

type DBMembershipRepo struct {
	db *gorm.DB
}

func NewMembershipRepo(db *gorm.DB) *DBMembershipRepo {
	return &DBMembershipRepo{
		db: db,
	}
}

func (r *DBMembershipRepo) CreateMembership(m *membership.Membership) error {
	return r.db.Create(m).Error
}

func (r *DBMembershipRepo) GetMembershipByID(id uint) (membership.Membership, error) {
	var m membership.Membership
	err := r.db.First(&m, id).Error
	return m, err
}

func (r *DBMembershipRepo) GetMembershipByIDForUpdate(id uint) (membership.Membership, error) {
	var m membership.Membership
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error
	return m, err
}

func (r *DBMembershipRepo) GetByUserAndDorm(uid, dormID uint) (membership.Membership, error) {
	var m membership.Membership
	err := r.db.First(&m, "u_id = ? AND dorm_id = ?", uid, dormID).Error
	return m, err
}

func (r *DBMembershipRepo) GetByInviteCode(code string) (membership.Membership, error) {
	var m membership.Membership
	err := r.db.First(&m, "invite_code = ?", code).Error
	return m, err
}

func (r *DBMembershipRepo) UpdateMembership(m *membership.Membership) error {
	return r.db.Save(m).Error
}

func (r *DBMembershipRepo) DeleteMembership(id uint) error {
	return r.db.Delete(&membership.Membership{}, id).Error
}

func (r *DBMembershipRepo) ListByDorm(dormID uint) ([]membership.Membership, error) {
	var memberships []membership.Membership
	err := r.db.
		Where("dorm_id = ?", dormID).
		Find(&memberships).Error
	return memberships, err
}

func (r *DBMembershipRepo) ListByUser(uid uint) ([]membership.Membership, error) {
	var memberships []membership.Membership
	err := r.db.
		Where("u_id = ?", uid).
		Find(&memberships).Error
	return memberships, err
}

func (r *DBMembershipRepo) CountActiveByDorm(dormID uint) (int64, error) {
	var count int64
	err := r.db.Model(&membership.Membership{}).
		Where("dorm_id = ? AND status = ?", dormID, membership.MemberStatusActive).
		Count(&count).Error
	return count, err
}

func (r *DBMembershipRepo) CountActiveAdminsByDorm(dormID uint) (int64, error) {
	var count int64
	err := r.db.Model(&membership.Membership{}).
		Where("dorm_id = ? AND status = ? AND member_role = ?",
			dormID, membership.MemberStatusActive, membership.MemberRoleAdmin).
		Count(&count).Error
	return count, err
}

func (r *DBMembershipRepo) CountActiveByUser(uid uint) (int64, error) {
	var count int64
	err := r.db.Model(&membership.Membership{}).
		Where("u_id = ? AND status = ?", uid, membership.MemberStatusActive).
		Count(&count).Error
	return count, err
}

func (r *DBMembershipRepo) GetActiveAdmin(dormID uint) (membership.Membership, error) {
	var m membership.Membership
	err := r.db.
		Where("dorm_id = ? AND status = ? AND member_role = ?",
			dormID, membership.MemberStatusActive, membership.MemberRoleAdmin).
		Order("membership_id").
		First(&m).Error
	return m, err
}

func (r *DBMembershipRepo) FindAlternativeAdmin(dormID, excludeMembershipID uint) (membership.Membership, error) {
	var m membership.Membership
	err := r.db.
		Where("dorm_id = ? AND status = ? AND membership_id <> ?",
			dormID, membership.MemberStatusActive, excludeMembershipID).
		Order("CASE member_role WHEN 'admin' THEN 0 WHEN 'member' THEN 1 ELSE 2 END").
		Order("membership_id").
		First(&m).Error
	return m, err
}

func (r *DBMembershipRepo) WithTx(tx *gorm.DB) MembershipRepo {
	if tx == nil {
		return r
	}
	return &DBMembershipRepo{
		db: tx,
	}
}

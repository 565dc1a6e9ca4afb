package store

import (
	"bankapi/models"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrBranchNotFound is returned by GetBranch when no branch has the requested code.
var ErrBranchNotFound = errors.New("branch not found")

// BankStore answers the read-only bank and branch queries.
type BankStore struct {
	db *gorm.DB
}

// New returns a BankStore reading through db.
func New(db *gorm.DB) *BankStore {
	return &BankStore{db: db}
}

// ListBanks returns every bank ordered by name. The result is empty, not nil,
// when nothing has been loaded.
func (s *BankStore) ListBanks(ctx context.Context) ([]models.Bank, error) {
	banks := []models.Bank{}
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&banks).Error; err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	return banks, nil
}

// GetBranch looks up a branch by its IFSC code, case-insensitively, and
// attaches the owning bank's name.
func (s *BankStore) GetBranch(ctx context.Context, ifsc string) (*models.BranchDetail, error) {
	code := strings.ToUpper(strings.TrimSpace(ifsc))

	var detail models.BranchDetail
	result := s.db.WithContext(ctx).
		Table("branches AS b").
		Select("b.ifsc, b.branch, b.address, b.city, b.district, b.state, bk.name AS bank_name").
		Joins("JOIN banks bk ON b.bank_id = bk.id").
		Where("b.ifsc = ?", code).
		Limit(1).
		Scan(&detail)
	if result.Error != nil {
		return nil, fmt.Errorf("get branch %s: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBranchNotFound, ifsc)
	}
	return &detail, nil
}

// Counts returns the number of rows in banks and branches.
func (s *BankStore) Counts(ctx context.Context) (banks, branches int64, err error) {
	db := s.db.WithContext(ctx)
	if err = db.Model(&models.Bank{}).Count(&banks).Error; err != nil {
		return 0, 0, fmt.Errorf("count banks: %w", err)
	}
	if err = db.Model(&models.Branch{}).Count(&branches).Error; err != nil {
		return 0, 0, fmt.Errorf("count branches: %w", err)
	}
	return banks, branches, nil
}

package models

import (
	"fmt"
	"strings"

	"github.com/budget-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

func init() {
	// Amounts are sent as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Budget is an amount of money a user plans to spend, starting at a specific date.
type Budget struct {
	DefaultModel
	UserID      string          `json:"userId" gorm:"index" example:"u1"`                                                    // ID of the user owning the budget
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:DECIMAL(20,8)" example:"500"`                                 // Total amount of the budget
	StartDate   types.Date      `json:"startDate" swaggertype:"primitive,string" format:"date" example:"2024-01-01"`         // Day the budget starts
	EndDate     *types.Date     `json:"endDate,omitempty" swaggertype:"primitive,string" format:"date" example:"2024-01-31"` // Day the budget ends
	Description string          `json:"description" example:"Groceries"`                                                     // Description of the budget
	Currency    string          `json:"currency,omitempty" example:"€"`                                                      // Currency of the budget
}

// BeforeSave normalizes the text fields of the budget.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.normalize()
	return nil
}

// BeforeCreate sets the ID and verifies the budget is valid.
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if err := b.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	return b.Validate()
}

// normalize trims whitespace from text fields and converts them to
// Unicode normalization form C so that equal strings compare as equal.
func (b *Budget) normalize() {
	b.Description = norm.NFC.String(strings.TrimSpace(b.Description))
	b.Currency = norm.NFC.String(strings.TrimSpace(b.Currency))
}

// Validate checks that all required fields of the budget are set.
func (b Budget) Validate() error {
	var missing []string

	if b.UserID == "" {
		missing = append(missing, "userId")
	}

	if b.TotalAmount.IsZero() {
		missing = append(missing, "totalAmount")
	}

	if b.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}

	if b.Description == "" {
		missing = append(missing, "description")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: path %s is required", ErrBudgetInvalid, strings.Join(missing, ", "))
	}

	return nil
}

// Save persists a new budget.
func (b *Budget) Save(db *gorm.DB) error {
	return db.Create(b).Error
}

// FindBudgets returns all budgets matching the non-zero fields of
// filter, oldest first.
func FindBudgets(db *gorm.DB, filter Budget) ([]Budget, error) {
	budgets := make([]Budget, 0)

	err := db.
		Where(&filter).
		Order("created_at ASC").
		Order("id ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// FindBudgetByID returns the budget with the ID.
//
// If there is none, the error wraps ErrResourceNotFound.
func FindBudgetByID(db *gorm.DB, id string) (Budget, error) {
	uid, err := parseID(id)
	if err != nil {
		return Budget{}, err
	}

	var budget Budget
	err = db.Where("id = ?", uid).First(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

// UpdateBudgetByID writes the fields of patch named in fields to the budget
// with the ID and returns the updated budget.
//
// The updated budget is validated before the transaction commits. If it is
// invalid, the budget is not changed.
func UpdateBudgetByID(db *gorm.DB, id string, patch Budget, fields []any) (Budget, error) {
	uid, err := parseID(id)
	if err != nil {
		return Budget{}, err
	}

	var updated Budget
	err = db.Transaction(func(tx *gorm.DB) error {
		var budget Budget
		err := tx.Where("id = ?", uid).First(&budget).Error
		if err != nil {
			return err
		}

		if len(fields) > 0 {
			patch.normalize()

			err = tx.Model(&budget).Select("UpdatedAt", fields...).Updates(patch).Error
			if err != nil {
				return err
			}
		}

		err = tx.Where("id = ?", uid).First(&updated).Error
		if err != nil {
			return err
		}

		return updated.Validate()
	})
	if err != nil {
		return Budget{}, err
	}

	return updated, nil
}

// DeleteBudgetByID permanently deletes the budget with the ID and returns it.
func DeleteBudgetByID(db *gorm.DB, id string) (Budget, error) {
	uid, err := parseID(id)
	if err != nil {
		return Budget{}, err
	}

	var budget Budget
	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", uid).First(&budget).Error
		if err != nil {
			return err
		}

		return tx.Delete(&budget).Error
	})
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

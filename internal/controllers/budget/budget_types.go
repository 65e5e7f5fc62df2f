package budget

import (
	"bytes"
	"encoding/json"

	"github.com/budget-ledger/backend/internal/models"
	"github.com/budget-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters.
type BudgetEditable struct {
	UserID      userID          `json:"userId" swaggertype:"string" example:"u1"`                                    // ID of the user owning the budget
	TotalAmount decimal.Decimal `json:"totalAmount" swaggertype:"number" example:"500"`                              // Total amount of the budget
	StartDate   types.Date      `json:"startDate" swaggertype:"primitive,string" format:"date" example:"2024-01-01"` // Day the budget starts
	EndDate     *types.Date     `json:"endDate" swaggertype:"primitive,string" format:"date" example:"2024-01-31"`   // Day the budget ends
	Description string          `json:"description" example:"Groceries"`                                             // Description of the budget
	Currency    string          `json:"currency" example:"€"`                                                        // Currency of the budget
}

// model returns the database resource representation of the BudgetEditable.
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		UserID:      string(editable.UserID),
		TotalAmount: editable.TotalAmount,
		StartDate:   editable.StartDate,
		EndDate:     editable.EndDate,
		Description: editable.Description,
		Currency:    editable.Currency,
	}
}

// complete reports if all fields needed to create a budget are set.
//
// A zero amount counts as not set.
func (editable BudgetEditable) complete() bool {
	return editable.UserID != "" &&
		!editable.TotalAmount.IsZero() &&
		!editable.StartDate.IsZero() &&
		editable.Description != ""
}

// userID is the ID of a user. JSON numbers are accepted and kept
// in their literal form, so 123 becomes "123".
type userID string

func (u *userID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*u = userID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*u = userID(n.String())
	return nil
}

// MessageResponse is the body of responses that only carry a message.
type MessageResponse struct {
	Message string `json:"message" example:"Budget deleted successfully"`
}

package budget_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/budget-ledger/backend/internal/models"
	"github.com/budget-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/budgets", map[string]any{
		"userId":      "u1",
		"totalAmount": 500,
		"startDate":   "2024-01-01",
		"description": "Groceries",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	assert.Contains(suite.T(), recorder.Body.String(), `"totalAmount":500`)

	var budget models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budget)

	assert.NotEqual(suite.T(), uuid.Nil, budget.ID)
	assert.Equal(suite.T(), "u1", budget.UserID)
	assert.True(suite.T(), budget.TotalAmount.Equal(decimal.NewFromInt(500)), "Amount is %s", budget.TotalAmount)
	assert.Equal(suite.T(), "2024-01-01", budget.StartDate.String())
	assert.Equal(suite.T(), "Groceries", budget.Description)
	assert.Nil(suite.T(), budget.EndDate)
}

func (suite *TestSuiteStandard) TestCreateOptionalFields() {
	body := validBody("u1")
	body["endDate"] = "2024-01-31"
	body["currency"] = " EUR "
	body["totalAmount"] = "123.45"

	budget := suite.createTestBudget(body)

	assert.Equal(suite.T(), "2024-01-31", budget.EndDate.String())
	assert.Equal(suite.T(), "EUR", budget.Currency)
	assert.True(suite.T(), budget.TotalAmount.Equal(decimal.RequireFromString("123.45")))
}

func (suite *TestSuiteStandard) TestCreateUnknownFieldsIgnored() {
	body := validBody("u1")
	body["color"] = "blue"

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/budgets", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	assert.NotContains(suite.T(), recorder.Body.String(), "color")
}

func (suite *TestSuiteStandard) TestCreateMissingFields() {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"No user", "userId", nil},
		{"Empty user", "userId", ""},
		{"No amount", "totalAmount", nil},
		{"Zero amount", "totalAmount", 0},
		{"No start date", "startDate", nil},
		{"Empty start date", "startDate", ""},
		{"No description", "description", nil},
		{"Empty description", "description", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body := validBody("u1")
			if tt.value == nil {
				delete(body, tt.field)
			} else {
				body[tt.field] = tt.value
			}

			recorder := test.Request(t, http.MethodPost, "http://example.com/budgets", body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Equal(t, "All fields are required", test.DecodeError(t, recorder.Body.Bytes()).Message)
		})
	}

	assert.Len(suite.T(), suite.listBudgets(), 0, "Budgets were persisted for incomplete payloads")
}

func (suite *TestSuiteStandard) TestCreateBrokenBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Not JSON", `{ "userId": "u1", `},
		{"Garbage", `userId=u1&totalAmount=5`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/budgets", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()).Message, "the body of your request contains invalid or un-parseable data")
		})
	}

	assert.Len(suite.T(), suite.listBudgets(), 0)
}

// TestCreateEmptyBody verifies that a missing body is treated like an empty object.
func (suite *TestSuiteStandard) TestCreateEmptyBody() {
	for _, body := range []string{"", "  "} {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/budgets", body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		assert.JSONEq(suite.T(), `{"message":"All fields are required"}`, recorder.Body.String())
	}

	assert.Len(suite.T(), suite.listBudgets(), 0)
}

func (suite *TestSuiteStandard) TestCreateUnconvertibleValues() {
	tests := []struct {
		name  string
		body  string
		error string
	}{
		{"Amount", `{ "userId": "u1", "totalAmount": "abc", "startDate": "2024-01-01", "description": "Rent" }`, "abc"},
		{"Date", `{ "userId": "u1", "totalAmount": 5, "startDate": "January", "description": "Rent" }`, "January"},
		{"Description", `{ "userId": "u1", "totalAmount": 5, "startDate": "2024-01-01", "description": 5 }`, "cannot unmarshal number"},
		{"User object", `{ "userId": { "id": 1 }, "totalAmount": 5, "startDate": "2024-01-01", "description": "Rent" }`, "cannot unmarshal object"},
		{"Body is an array", `[ "Rent" ]`, "cannot unmarshal array"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/budgets", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

			e := test.DecodeError(t, recorder.Body.Bytes())
			assert.Equal(t, "Server error", e.Message)
			assert.Contains(t, e.Error, tt.error)
		})
	}

	assert.Len(suite.T(), suite.listBudgets(), 0)
}

func (suite *TestSuiteStandard) TestCreateNumericUserID() {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"Integer", 123, "123"},
		{"Decimal", 12.5, "12.5"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body := validBody("")
			body["userId"] = tt.value

			recorder := test.Request(t, http.MethodPost, "http://example.com/budgets", body)
			test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

			var budget models.Budget
			test.DecodeResponse(t, &recorder, &budget)
			assert.Equal(t, tt.expected, budget.UserID)
		})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/budgets/user/123", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestList() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.Equal(suite.T(), "[]", recorder.Body.String())

	first := suite.createTestBudget(validBody("u1"))
	second := suite.createTestBudget(validBody("u2"))

	budgets := suite.listBudgets()
	if assert.Len(suite.T(), budgets, 2) {
		assert.Equal(suite.T(), first.ID, budgets[0].ID)
		assert.Equal(suite.T(), second.ID, budgets[1].ID)
	}
}

func (suite *TestSuiteStandard) TestListByUser() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/budgets/user/u1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	assert.Equal(suite.T(), "No budgets found for this user", test.DecodeError(suite.T(), recorder.Body.Bytes()).Message)

	a := suite.createTestBudget(validBody("u1"))
	b := suite.createTestBudget(validBody("u1"))
	_ = suite.createTestBudget(validBody("u2"))

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/budgets/user/u1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budgets)
	if assert.Len(suite.T(), budgets, 2) {
		assert.Equal(suite.T(), a.ID, budgets[0].ID)
		assert.Equal(suite.T(), b.ID, budgets[1].ID)
	}

	for _, budget := range budgets {
		assert.Equal(suite.T(), "u1", budget.UserID)
	}

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/budgets/user/u3", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGet() {
	budget := suite.createTestBudget(validBody("u1"))

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/budgets/"+budget.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var fetched models.Budget
	test.DecodeResponse(suite.T(), &recorder, &fetched)
	assert.Equal(suite.T(), budget.ID, fetched.ID)
	assert.Equal(suite.T(), budget.Description, fetched.Description)
	assert.True(suite.T(), budget.TotalAmount.Equal(fetched.TotalAmount))
	assert.True(suite.T(), budget.StartDate.Equal(fetched.StartDate))
}

func (suite *TestSuiteStandard) TestNotFound() {
	path := "http://example.com/budgets/" + uuid.New().String()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		suite.T().Run(method, func(t *testing.T) {
			var body any
			if method == http.MethodPut || method == http.MethodPatch {
				body = map[string]any{"description": "Rent"}
			}

			recorder := test.Request(t, method, path, body)
			test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
			assert.Equal(t, "Budget not found", test.DecodeError(t, recorder.Body.Bytes()).Message)
		})
	}
}

func (suite *TestSuiteStandard) TestMalformedID() {
	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		suite.T().Run(method, func(t *testing.T) {
			var body any
			if method == http.MethodPatch {
				body = map[string]any{"description": "Rent"}
			}

			recorder := test.Request(t, method, "http://example.com/budgets/not-an-id", body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

			e := test.DecodeError(t, recorder.Body.Bytes())
			assert.Equal(t, "Server error", e.Message)
			assert.Contains(t, e.Error, "cast to UUID failed for value")
		})
	}
}

func (suite *TestSuiteStandard) TestUpdate() {
	budget := suite.createTestBudget(validBody("u1"))

	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		suite.T().Run(method, func(t *testing.T) {
			description := "Rent " + strings.ToLower(method)

			recorder := test.Request(t, method, "http://example.com/budgets/"+budget.ID.String(), map[string]any{
				"description": " " + description + " ",
				"endDate":     "2024-12-31",
			})
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var updated models.Budget
			test.DecodeResponse(t, &recorder, &updated)
			assert.Equal(t, budget.ID, updated.ID)
			assert.Equal(t, description, updated.Description)
			assert.Equal(t, "2024-12-31", updated.EndDate.String())

			// Fields not in the body stay untouched
			assert.Equal(t, "u1", updated.UserID)
			assert.True(t, budget.TotalAmount.Equal(updated.TotalAmount))
			assert.Equal(t, "2024-01-01", updated.StartDate.String())
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateEmptyObject() {
	budget := suite.createTestBudget(validBody("u1"))

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/budgets/"+budget.ID.String(), map[string]any{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Budget
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.Equal(suite.T(), budget.Description, updated.Description)
}

func (suite *TestSuiteStandard) TestUpdateInvalid() {
	budget := suite.createTestBudget(validBody("u1"))

	tests := []struct {
		name string
		body map[string]any
	}{
		{"Empty description", map[string]any{"description": ""}},
		{"Zero amount", map[string]any{"totalAmount": 0}},
		{"Null start date", map[string]any{"startDate": nil}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPatch, "http://example.com/budgets/"+budget.ID.String(), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

			e := test.DecodeError(t, recorder.Body.Bytes())
			assert.Equal(t, "Server error", e.Message)
			assert.Contains(t, e.Error, "budget validation failed")
		})
	}

	// The budget is unchanged
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/budgets/"+budget.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var fetched models.Budget
	test.DecodeResponse(suite.T(), &recorder, &fetched)
	assert.Equal(suite.T(), "Groceries", fetched.Description)
	assert.True(suite.T(), fetched.TotalAmount.Equal(decimal.NewFromInt(500)))
	assert.Equal(suite.T(), "2024-01-01", fetched.StartDate.String())
}

func (suite *TestSuiteStandard) TestUpdateBrokenBody() {
	budget := suite.createTestBudget(validBody("u1"))

	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		suite.T().Run(method, func(t *testing.T) {
			recorder := test.Request(t, method, "http://example.com/budgets/"+budget.ID.String(), `{ "description": `)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()).Message, "the body of your request contains invalid or un-parseable data")
		})
	}
}

// TestUpdateEmptyBody verifies that a missing body updates nothing.
func (suite *TestSuiteStandard) TestUpdateEmptyBody() {
	budget := suite.createTestBudget(validBody("u1"))

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"PUT", http.MethodPut, "http://example.com/budgets/" + budget.ID.String(), http.StatusOK},
		{"PATCH", http.MethodPatch, "http://example.com/budgets/" + budget.ID.String(), http.StatusOK},
		{"Unknown ID", http.MethodPut, "http://example.com/budgets/" + uuid.New().String(), http.StatusNotFound},
		{"Malformed ID", http.MethodPut, "http://example.com/budgets/not-an-id", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, tt.method, tt.path, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var updated models.Budget
			test.DecodeResponse(t, &recorder, &updated)
			assert.Equal(t, budget.ID, updated.ID)
			assert.Equal(t, "Groceries", updated.Description)
			assert.Equal(t, "u1", updated.UserID)
			assert.True(t, budget.TotalAmount.Equal(updated.TotalAmount))
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateUnconvertibleValues() {
	budget := suite.createTestBudget(validBody("u1"))

	tests := []struct {
		name  string
		body  string
		error string
	}{
		{"Amount", `{ "totalAmount": "abc" }`, "abc"},
		{"Date", `{ "startDate": "January" }`, "January"},
		{"Description", `{ "description": 5 }`, "cannot unmarshal number"},
		{"Body is an array", `[ "Rent" ]`, "cannot unmarshal array"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPut, "http://example.com/budgets/"+budget.ID.String(), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

			e := test.DecodeError(t, recorder.Body.Bytes())
			assert.Equal(t, "Server error", e.Message)
			assert.Contains(t, e.Error, tt.error)
		})
	}

	// The budget is unchanged
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/budgets/"+budget.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var fetched models.Budget
	test.DecodeResponse(suite.T(), &recorder, &fetched)
	assert.Equal(suite.T(), "Groceries", fetched.Description)
	assert.True(suite.T(), fetched.TotalAmount.Equal(decimal.NewFromInt(500)))
	assert.Equal(suite.T(), "2024-01-01", fetched.StartDate.String())
}

func (suite *TestSuiteStandard) TestUpdateNumericUserID() {
	budget := suite.createTestBudget(validBody("u1"))

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/budgets/"+budget.ID.String(), `{ "userId": 42 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Budget
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.Equal(suite.T(), "42", updated.UserID)
}

func (suite *TestSuiteStandard) TestDelete() {
	budget := suite.createTestBudget(validBody("u1"))
	path := "http://example.com/budgets/" + budget.ID.String()

	recorder := test.Request(suite.T(), http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.Equal(suite.T(), "Budget deleted successfully", test.DecodeError(suite.T(), recorder.Body.Bytes()).Message)

	recorder = test.Request(suite.T(), http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	assert.Equal(suite.T(), "Budget not found", test.DecodeError(suite.T(), recorder.Body.Bytes()).Message)

	assert.Len(suite.T(), suite.listBudgets(), 0)
}

// TestLifecycle creates a budget, finds it for its user, deletes it
// and verifies it is gone.
func (suite *TestSuiteStandard) TestLifecycle() {
	budget := suite.createTestBudget(map[string]any{
		"userId":      "u1",
		"totalAmount": 500,
		"startDate":   "2024-01-01",
		"description": "Groceries",
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/budgets/user/u1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budgets)
	assert.Len(suite.T(), budgets, 1)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/budgets/"+budget.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.JSONEq(suite.T(), `{"message":"Budget deleted successfully"}`, recorder.Body.String())

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/budgets/"+budget.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	assert.JSONEq(suite.T(), `{"message":"Budget not found"}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	budget := suite.createTestBudget(validBody("u1"))
	path := "http://example.com/budgets/" + budget.ID.String()

	suite.CloseDB()

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "http://example.com/budgets", nil},
		{http.MethodGet, "http://example.com/budgets/user/u1", nil},
		{http.MethodPost, "http://example.com/budgets", validBody("u1")},
		{http.MethodGet, path, nil},
		{http.MethodPatch, path, map[string]any{"description": "Rent"}},
		{http.MethodDelete, path, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := test.Request(t, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

			e := test.DecodeError(t, recorder.Body.Bytes())
			assert.Equal(t, "Server error", e.Message)
			assert.Contains(t, e.Error, "sql: database is closed")
		})
	}
}

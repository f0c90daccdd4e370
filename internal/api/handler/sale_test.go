package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAddSale_Validation(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode string
	}{
		{
			name:         "sem usuário",
			body:         `{"amount": 150.00, "date": "2025-01-15"}`,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "sem valor",
			body:         `{"user_id": 1, "date": "2025-01-15"}`,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "valor zero",
			body:         `{"user_id": 1, "amount": 0, "date": "2025-01-15"}`,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "sem data",
			body:         `{"user_id": 1, "amount": 150.00}`,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "data em formato inválido",
			body:         `{"user_id": 1, "amount": 150.00, "date": "15/01/2025"}`,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:         "corpo inválido",
			body:         `{`,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Nenhuma expectativa: requisição inválida nunca chega ao repositório
			saleRepo := mocks.NewMockSaleRepository(ctrl)
			service := selling.NewService(saleRepo)

			req := httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			AddSale(service).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
			assert.Equal(t, tt.expectedCode, apiErr.Code)
		})
	}
}

func TestAddSale_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := &domain.Sale{
		ID:     7,
		UserID: 1,
		Amount: decimal.RequireFromString("150.00"),
		Date:   "2025-01-15",
	}

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	saleRepo.EXPECT().
		Create(1, gomock.Any(), "2025-01-15").
		Return(created, nil)

	service := selling.NewService(saleRepo)

	body := `{"user_id": 1, "amount": 150.00, "date": "2025-01-15"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(body))
	rec := httptest.NewRecorder()

	AddSale(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Sale
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.UserID, got.UserID)
	assert.True(t, created.Amount.Equal(got.Amount))
	assert.Equal(t, created.Date, got.Date)
}

package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	"github.com/lesnaszkolka/ino-backend/internal/dto"
)

func TestEventResponse_FeeMarshalsAsNumber(t *testing.T) {
	fee := decimal.NewFromFloat(50)
	event := &domain.Event{
		EventID:   1,
		Name:      "Nocna Wiosenna",
		Date:      time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
		StartTime: "21:30",
		Fee:       &fee,
	}

	data, err := json.Marshal(dto.ToEventResponse(event))

	require.NoError(t, err)
	assert.Contains(t, string(data), `"fee":50`)
	assert.NotContains(t, string(data), `"fee":"50"`)
}

func TestEventResponse_NilFeeOmitted(t *testing.T) {
	event := &domain.Event{EventID: 2, Name: "Jesienna", Date: time.Now()}

	data, err := json.Marshal(dto.ToEventResponse(event))

	require.NoError(t, err)
	assert.NotContains(t, string(data), `"fee"`)
}

package get_effective_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getEffectiveSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_effective_schedule"
)

type fakeUseCase struct {
	err error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getEffectiveSchedule.Request) (*getEffectiveSchedule.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &getEffectiveSchedule.Response{
		Date:        req.Date,
		Tier:        "special_date",
		Description: "Сокращенный день",
		Windows: []getEffectiveSchedule.Window{{
			TimeSlot:  domain.MustTimeSlot("09:00", "13:00"),
			StartTime: time.Date(2025, time.December, 31, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, time.December, 31, 13, 0, 0, 0, time.UTC),
		}},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability/schedule?date=2025-12-31", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2025-12-31",
		"tier": "special_date",
		"closed": false,
		"description": "Сокращенный день",
		"windows": [{"startTime": "09:00", "endTime": "13:00", "start": "2025-12-31T09:00:00Z", "end": "2025-12-31T13:00:00Z"}]
	}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	cases := map[string]struct {
		url    string
		err    error
		status int
	}{
		"missing date": {"/api/v1/availability/schedule", nil, http.StatusBadRequest},
		"bad date":     {"/api/v1/availability/schedule?date=tomorrow", nil, http.StatusBadRequest},
		"internal":     {"/api/v1/availability/schedule?date=2025-12-31", getEffectiveSchedule.ErrInternal, http.StatusInternalServerError},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeUseCase{err: tc.err}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, tc.url, nil))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

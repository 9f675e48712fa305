package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/courtbook/backend/config"
	bookingmock "github.com/courtbook/backend/internal/domains/bookings/mock"
	bookingrepo "github.com/courtbook/backend/internal/domains/bookings/repository"
	courtmock "github.com/courtbook/backend/internal/domains/courts/mock"
	courtrepo "github.com/courtbook/backend/internal/domains/courts/repository"
	"github.com/courtbook/backend/internal/domains/schedule/dto"
	"github.com/courtbook/backend/pkg/constant"
	"github.com/courtbook/backend/pkg/failure"
	"github.com/courtbook/backend/pkg/helper"
	log "github.com/courtbook/backend/pkg/logger/mock"
	redis "github.com/courtbook/backend/pkg/redis/mock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestScheduleService_GetDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}

	mockBookingQuerier := bookingmock.NewMockQuerier(ctrl)
	mockCourtQuerier := courtmock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockBookingQuerier, mockCourtQuerier, mockRedis, cfg, mockLogger)

	// 2025-06-02 is a Monday.
	const monday = "2025-06-02"

	court := courtrepo.Court{
		ID:                     helper.PgUUID(uuid.NewString()),
		Name:                   "Center Court",
		SurfaceType:            constant.CourtSurfaceHard,
		OpenTime:               helper.PgTimeFromMinutes(8 * 60),
		CloseTime:              helper.PgTimeFromMinutes(22 * 60),
		DefaultDurationMinutes: 90,
	}

	block := courtrepo.RecurringBlock{
		ID:              helper.PgUUID(uuid.NewString()),
		CourtID:         court.ID,
		StartTime:       helper.PgTimeFromMinutes(14 * 60),
		DurationMinutes: 120,
		Purpose:         constant.BlockPurposeTraining,
		Cadence:         constant.BlockCadenceWeekly,
		Weekdays:        []int32{1},
	}

	booking := bookingrepo.Booking{
		ID:              helper.PgUUID(uuid.NewString()),
		CourtID:         court.ID,
		OwnerID:         helper.PgUUID(uuid.NewString()),
		BookingDate:     helper.PgDate(monday),
		StartTime:       helper.PgTimeFromMinutes(10 * 60),
		EndTime:         helper.PgTimeFromMinutes(11 * 60),
		DurationMinutes: 60,
		Status:          constant.BookingStatusApproved,
		Kind:            constant.BookingKindSingle,
	}

	t.Run("success: bookings and block occurrences merged in start order", func(t *testing.T) {
		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return([]courtrepo.RecurringBlock{block}, nil)
		mockBookingQuerier.EXPECT().
			GetBookingsByCourtAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingrepo.Booking{booking}, nil)

		res, err := service.GetDay(ctx, dto.DayScheduleRequest{CourtID: court.ID.String(), Date: monday})

		assert.NoError(t, err)
		assert.Equal(t, court.Name, res.CourtName)
		assert.Equal(t, "08:00", res.OpenTime)
		assert.Equal(t, "22:00", res.CloseTime)
		assert.Len(t, res.Entries, 2)
		assert.Equal(t, dto.EntryTypeBooking, res.Entries[0].Type)
		assert.Equal(t, "10:00", res.Entries[0].StartTime)
		assert.Equal(t, dto.EntryTypeBlock, res.Entries[1].Type)
		assert.Equal(t, "14:00", res.Entries[1].StartTime)
		assert.Equal(t, "16:00", res.Entries[1].EndTime)
	})

	t.Run("success: block suspended by an exception is left out", func(t *testing.T) {
		suspended := block
		suspended.DatesNotApplied = append(suspended.DatesNotApplied, helper.PgDate(monday))

		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return([]courtrepo.RecurringBlock{suspended}, nil)
		mockBookingQuerier.EXPECT().
			GetBookingsByCourtAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		res, err := service.GetDay(ctx, dto.DayScheduleRequest{CourtID: court.ID.String(), Date: monday})

		assert.NoError(t, err)
		assert.Empty(t, res.Entries)
	})

	t.Run("success: cache hit skips the database", func(t *testing.T) {
		cached := dto.DayScheduleResponse{
			CourtID:   court.ID.String(),
			CourtName: court.Name,
			Date:      monday,
			Entries:   []dto.ScheduleEntry{},
		}

		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			SetArg(2, cached).
			Return(nil)

		res, err := service.GetDay(ctx, dto.DayScheduleRequest{CourtID: court.ID.String(), Date: monday})

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("error: court not found", func(t *testing.T) {
		missing := uuid.NewString()

		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), helper.PgUUID(missing)).
			Return(courtrepo.Court{}, pgx.ErrNoRows)

		_, err := service.GetDay(ctx, dto.DayScheduleRequest{CourtID: missing, Date: monday})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestScheduleService_GetWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}

	mockBookingQuerier := bookingmock.NewMockQuerier(ctrl)
	mockCourtQuerier := courtmock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockBookingQuerier, mockCourtQuerier, mockRedis, cfg, mockLogger)

	court := courtrepo.Court{
		ID:                     helper.PgUUID(uuid.NewString()),
		Name:                   "Court B",
		SurfaceType:            constant.CourtSurfaceAsphalt,
		OpenTime:               helper.PgTimeFromMinutes(8 * 60),
		CloseTime:              helper.PgTimeFromMinutes(22 * 60),
		DefaultDurationMinutes: 60,
	}

	// Active on Mondays only.
	block := courtrepo.RecurringBlock{
		ID:              helper.PgUUID(uuid.NewString()),
		CourtID:         court.ID,
		StartTime:       helper.PgTimeFromMinutes(9 * 60),
		DurationMinutes: 60,
		Purpose:         constant.BlockPurposeOther,
		Cadence:         constant.BlockCadenceWeekly,
		Weekdays:        []int32{1},
	}

	t.Run("success: seven days with the block only on its weekday", func(t *testing.T) {
		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return([]courtrepo.RecurringBlock{block}, nil)
		mockBookingQuerier.EXPECT().
			GetBookingsByCourtAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(7)

		res, err := service.GetWeek(ctx, dto.WeekScheduleRequest{CourtID: court.ID.String(), StartDate: "2025-06-01"})

		assert.NoError(t, err)
		assert.Len(t, res.Days, 7)

		// 2025-06-01 is a Sunday, so the Monday block lands on the second day.
		assert.Empty(t, res.Days[0].Entries)
		assert.Len(t, res.Days[1].Entries, 1)
		assert.Equal(t, dto.EntryTypeBlock, res.Days[1].Entries[0].Type)
		assert.Equal(t, "2025-06-02", res.Days[1].Date)

		for _, day := range res.Days[2:] {
			assert.Empty(t, day.Entries)
		}
	})

	t.Run("error: malformed start date", func(t *testing.T) {
		mockRedis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := service.GetWeek(ctx, dto.WeekScheduleRequest{CourtID: court.ID.String(), StartDate: "01-06-2025"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

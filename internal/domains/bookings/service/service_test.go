package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/courtbook/backend/config"
	"github.com/courtbook/backend/internal/domains/bookings/dto"
	"github.com/courtbook/backend/internal/domains/bookings/mock"
	"github.com/courtbook/backend/internal/domains/bookings/repository"
	courtmock "github.com/courtbook/backend/internal/domains/courts/mock"
	courtrepo "github.com/courtbook/backend/internal/domains/courts/repository"
	"github.com/courtbook/backend/internal/events"
	eventmock "github.com/courtbook/backend/internal/events/mock"
	"github.com/courtbook/backend/pkg/constant"
	"github.com/courtbook/backend/pkg/failure"
	"github.com/courtbook/backend/pkg/helper"
	log "github.com/courtbook/backend/pkg/logger/mock"
	redis "github.com/courtbook/backend/pkg/redis/mock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const futureDate = "2030-06-03" // a Monday

func fixtureCourt() courtrepo.Court {
	return courtrepo.Court{
		ID:                     helper.PgUUID(uuid.NewString()),
		Name:                   "Center Court",
		SurfaceType:            constant.CourtSurfaceHard,
		OpenTime:               helper.PgTimeFromMinutes(8 * 60),
		CloseTime:              helper.PgTimeFromMinutes(22 * 60),
		DefaultDurationMinutes: 90,
	}
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockCourtQuerier := courtmock.NewMockQuerier(ctrl)
	mockPublisher := eventmock.NewMockPublisher(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockCourtQuerier, mockPublisher, mockRedis, cfg, mockLogger)

	ownerID := uuid.NewString()
	court := fixtureCourt()

	baseReq := func() dto.CreateBookingRequest {
		return dto.CreateBookingRequest{
			CourtID:      uuid.MustParse(court.ID.String()),
			Date:         futureDate,
			StartTime:    "10:00",
			Kind:         constant.BookingKindSingle,
			Participants: []string{"Alice", "Bob"},
		}
	}

	t.Run("error: non admin booking for another user", func(t *testing.T) {
		req := baseReq()
		req.OwnerID = uuid.NewString()

		_, err := service.CreateBooking(ctx, req, ownerID, constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrUnauthorized, failure.GetKind(err))
	})

	t.Run("error: malformed date beats the owner override gate", func(t *testing.T) {
		req := baseReq()
		req.Date = "06/03/2030"
		req.OwnerID = uuid.NewString()

		_, err := service.CreateBooking(ctx, req, ownerID, constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrInvalidFields, failure.GetKind(err))
	})

	t.Run("error: non admin sets a non-default duration", func(t *testing.T) {
		req := baseReq()
		req.DurationMinutes = 120

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)

		_, err := service.CreateBooking(ctx, req, ownerID, constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrUnauthorized, failure.GetKind(err))
	})

	t.Run("error: past date rejected for regular user", func(t *testing.T) {
		req := baseReq()
		req.Date = "2020-01-06"

		_, err := service.CreateBooking(ctx, req, ownerID, constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrInvalidFields, failure.GetKind(err))
	})

	t.Run("error: outside operating hours", func(t *testing.T) {
		req := baseReq()
		req.StartTime = "21:30"

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return(nil, nil)

		_, err := service.CreateBooking(ctx, req, ownerID, constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrOutsideOperatingHours, failure.GetKind(err))
	})

	t.Run("error: recurring block conflict", func(t *testing.T) {
		req := baseReq()

		block := courtrepo.RecurringBlock{
			ID:              helper.PgUUID(uuid.NewString()),
			CourtID:         court.ID,
			StartTime:       helper.PgTimeFromMinutes(10 * 60),
			DurationMinutes: 120,
			Purpose:         constant.BlockPurposeTraining,
			Cadence:         constant.BlockCadenceWeekly,
			Weekdays:        []int32{1},
		}

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return([]courtrepo.RecurringBlock{block}, nil)

		_, err := service.CreateBooking(ctx, req, ownerID, constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrRecurringBlockConflict, failure.GetKind(err))
	})

	t.Run("error: overlap with existing booking", func(t *testing.T) {
		req := baseReq()

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return(nil, nil)
		mockQuerier.EXPECT().
			GetBookingsByCourtAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{
				{
					ID:        helper.PgUUID(uuid.NewString()),
					CourtID:   court.ID,
					StartTime: helper.PgTimeFromMinutes(11 * 60),
					EndTime:   helper.PgTimeFromMinutes(12 * 60),
				},
			}, nil)

		_, err := service.CreateBooking(ctx, req, ownerID, constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrTimeConflict, failure.GetKind(err))
	})

	t.Run("error: exclusion constraint maps to time conflict", func(t *testing.T) {
		req := baseReq()

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return(nil, nil)
		mockQuerier.EXPECT().
			GetBookingsByCourtAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		mockQuerier.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgtype.UUID{}, &pgconn.PgError{Code: "23P01"})

		_, err := service.CreateBooking(ctx, req, ownerID, constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrTimeConflict, failure.GetKind(err))
	})

	t.Run("success: slot booked and event emitted", func(t *testing.T) {
		req := baseReq()

		bookingID := helper.PgUUID(uuid.NewString())

		mockPgx.ExpectBegin()
		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return(nil, nil)
		mockQuerier.EXPECT().
			GetBookingsByCourtAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		mockQuerier.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertBookingParams) (pgtype.UUID, error) {
				assert.Equal(t, constant.BookingStatusApproved, arg.Status)
				assert.Equal(t, int32(90), arg.DurationMinutes)
				assert.Equal(t, helper.PgTimeFromMinutes(10*60), arg.StartTime)
				assert.Equal(t, helper.PgTimeFromMinutes(11*60+30), arg.EndTime)
				assert.Equal(t, []string{"Alice", "Bob"}, arg.Participants)

				return bookingID, nil
			})
		mockPublisher.EXPECT().
			ReservationCreated(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := service.CreateBooking(ctx, req, ownerID, constant.UserRoleUser)

		assert.NoError(t, err)
		assert.Equal(t, bookingID.String(), res)
	})

	t.Run("success: admin books a past date on behalf of a user", func(t *testing.T) {
		req := baseReq()
		req.Date = "2020-01-06"
		req.OwnerID = ownerID
		req.DurationMinutes = 120

		bookingID := helper.PgUUID(uuid.NewString())

		mockPgx.ExpectBegin()
		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return(nil, nil)
		mockQuerier.EXPECT().
			GetBookingsByCourtAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		mockQuerier.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertBookingParams) (pgtype.UUID, error) {
				assert.Equal(t, helper.PgUUID(ownerID), arg.OwnerID)
				assert.Equal(t, int32(120), arg.DurationMinutes)

				return bookingID, nil
			})
		mockPublisher.EXPECT().
			ReservationCreated(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := service.CreateBooking(ctx, req, uuid.NewString(), constant.UserRoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, bookingID.String(), res)
	})
}

func TestBookingService_UpdateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockCourtQuerier := courtmock.NewMockQuerier(ctrl)
	mockPublisher := eventmock.NewMockPublisher(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockCourtQuerier, mockPublisher, mockRedis, cfg, mockLogger)

	ownerID := uuid.NewString()
	court := fixtureCourt()

	booking := repository.Booking{
		ID:              helper.PgUUID(uuid.NewString()),
		CourtID:         court.ID,
		OwnerID:         helper.PgUUID(ownerID),
		BookingDate:     helper.PgDate(futureDate),
		StartTime:       helper.PgTimeFromMinutes(10 * 60),
		EndTime:         helper.PgTimeFromMinutes(11 * 60),
		DurationMinutes: 60,
		Status:          constant.BookingStatusApproved,
		Kind:            constant.BookingKindSingle,
		Participants:    []string{"Alice"},
	}

	t.Run("error: actor is not the owner", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), booking.ID).
			Return(booking, nil)

		_, err := service.UpdateBooking(ctx, booking.ID.String(), dto.UpdateBookingRequest{StartTime: "12:00"}, uuid.NewString(), constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrUnauthorized, failure.GetKind(err))
	})

	t.Run("error: reschedule collides with another booking", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), booking.ID).
			Return(booking, nil)

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return(nil, nil)
		mockQuerier.EXPECT().
			GetBookingsByCourtAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{
				booking,
				{
					ID:        helper.PgUUID(uuid.NewString()),
					CourtID:   court.ID,
					StartTime: helper.PgTimeFromMinutes(12*60 + 30),
					EndTime:   helper.PgTimeFromMinutes(13*60 + 30),
				},
			}, nil)

		_, err := service.UpdateBooking(ctx, booking.ID.String(), dto.UpdateBookingRequest{StartTime: "12:00"}, ownerID, constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrTimeConflict, failure.GetKind(err))
	})

	t.Run("success: owner reschedules", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), booking.ID).
			Return(booking, nil)

		mockPgx.ExpectBegin()
		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return(nil, nil)
		mockQuerier.EXPECT().
			GetBookingsByCourtAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{booking}, nil)
		mockQuerier.EXPECT().
			UpdateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateBookingParams) (pgtype.UUID, error) {
				assert.Equal(t, helper.PgTimeFromMinutes(12*60), arg.StartTime)
				assert.Equal(t, helper.PgTimeFromMinutes(13*60), arg.EndTime)
				assert.Equal(t, int32(60), arg.DurationMinutes)

				return booking.ID, nil
			})

		res, err := service.UpdateBooking(ctx, booking.ID.String(), dto.UpdateBookingRequest{StartTime: "12:00"}, ownerID, constant.UserRoleUser)

		assert.NoError(t, err)
		assert.Equal(t, booking.ID.String(), res)
	})

	t.Run("error: non admin sets a non-default duration", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), booking.ID).
			Return(booking, nil)

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)

		_, err := service.UpdateBooking(ctx, booking.ID.String(), dto.UpdateBookingRequest{DurationMinutes: 120}, ownerID, constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrUnauthorized, failure.GetKind(err))
	})

	t.Run("error: non admin reassigns the owner", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), booking.ID).
			Return(booking, nil)

		_, err := service.UpdateBooking(ctx, booking.ID.String(), dto.UpdateBookingRequest{OwnerID: uuid.NewString()}, ownerID, constant.UserRoleUser)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrUnauthorized, failure.GetKind(err))
	})

	t.Run("success: admin reassigns the owner", func(t *testing.T) {
		newOwner := uuid.NewString()

		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), booking.ID).
			Return(booking, nil)

		mockPgx.ExpectBegin()
		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		mockCourtQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockCourtQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return(nil, nil)
		mockQuerier.EXPECT().
			GetBookingsByCourtAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.Booking{booking}, nil)
		mockQuerier.EXPECT().
			UpdateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateBookingParams) (pgtype.UUID, error) {
				assert.Equal(t, helper.PgUUID(newOwner), arg.OwnerID)

				return booking.ID, nil
			})

		res, err := service.UpdateBooking(ctx, booking.ID.String(), dto.UpdateBookingRequest{OwnerID: newOwner}, uuid.NewString(), constant.UserRoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, booking.ID.String(), res)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockCourtQuerier := courtmock.NewMockQuerier(ctrl)
	mockPublisher := eventmock.NewMockPublisher(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockCourtQuerier, mockPublisher, mockRedis, cfg, mockLogger)

	ownerID := uuid.NewString()

	booking := repository.Booking{
		ID:           helper.PgUUID(uuid.NewString()),
		CourtID:      helper.PgUUID(uuid.NewString()),
		OwnerID:      helper.PgUUID(ownerID),
		BookingDate:  helper.PgDate(futureDate),
		StartTime:    helper.PgTimeFromMinutes(10 * 60),
		EndTime:      helper.PgTimeFromMinutes(11 * 60),
		Status:       constant.BookingStatusApproved,
		Kind:         constant.BookingKindSingle,
		Participants: []string{"Alice"},
		CreatedAt:    pgtype.Timestamp{Time: time.Now(), Valid: true},
	}

	t.Run("error: booking not found", func(t *testing.T) {
		missing := uuid.NewString()

		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), helper.PgUUID(missing)).
			Return(repository.Booking{}, pgx.ErrNoRows)

		err := service.CancelBooking(ctx, dto.CancelBookingRequest{
			BookingID: missing,
			ActorID:   ownerID,
			ActorRole: constant.UserRoleUser,
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: actor is not the owner", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), booking.ID).
			Return(booking, nil)

		err := service.CancelBooking(ctx, dto.CancelBookingRequest{
			BookingID: booking.ID.String(),
			ActorID:   uuid.NewString(),
			ActorRole: constant.UserRoleUser,
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrUnauthorized, failure.GetKind(err))
	})

	t.Run("success: owner cancels", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), booking.ID).
			Return(booking, nil)
		mockQuerier.EXPECT().
			CancelBooking(gomock.Any(), gomock.Any(), repository.CancelBookingParams{
				ID:         booking.ID,
				CanceledBy: helper.PgString(constant.BookingCanceledByOwner),
			}).
			Return(nil)
		mockPublisher.EXPECT().
			ReservationDeleted(gomock.Any(), gomock.Any()).
			Return(nil)

		err := service.CancelBooking(ctx, dto.CancelBookingRequest{
			BookingID: booking.ID.String(),
			ActorID:   ownerID,
			ActorRole: constant.UserRoleUser,
		})

		assert.NoError(t, err)
	})

	t.Run("success: admin cancels another user's booking", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetBookingById(gomock.Any(), gomock.Any(), booking.ID).
			Return(booking, nil)
		mockQuerier.EXPECT().
			CancelBooking(gomock.Any(), gomock.Any(), repository.CancelBookingParams{
				ID:         booking.ID,
				CanceledBy: helper.PgString(constant.BookingCanceledByAdmin),
			}).
			Return(nil)
		mockPublisher.EXPECT().
			ReservationDeleted(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event events.ReservationDeletedEvent) error {
				assert.Equal(t, constant.BookingCanceledByAdmin, event.CanceledBy)

				return nil
			})

		err := service.CancelBooking(ctx, dto.CancelBookingRequest{
			BookingID: booking.ID.String(),
			ActorID:   uuid.NewString(),
			ActorRole: constant.UserRoleAdmin,
		})

		assert.NoError(t, err)
	})
}

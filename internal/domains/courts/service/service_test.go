package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/courtbook/backend/config"
	"github.com/courtbook/backend/internal/domains/courts/dto"
	"github.com/courtbook/backend/internal/domains/courts/mock"
	"github.com/courtbook/backend/internal/domains/courts/repository"
	"github.com/courtbook/backend/pkg/constant"
	"github.com/courtbook/backend/pkg/failure"
	"github.com/courtbook/backend/pkg/helper"
	log "github.com/courtbook/backend/pkg/logger/mock"
	redis "github.com/courtbook/backend/pkg/redis/mock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func fixtureCourt() repository.Court {
	return repository.Court{
		ID:                     helper.PgUUID(uuid.NewString()),
		Name:                   "Center Court",
		SurfaceType:            constant.CourtSurfaceHard,
		OpenTime:               helper.PgTimeFromMinutes(8 * 60),
		CloseTime:              helper.PgTimeFromMinutes(22 * 60),
		DefaultDurationMinutes: 90,
	}
}

func TestCourtService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
		Booking: config.Booking{
			DefaultDurationMinutes: 90,
		},
	}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	baseReq := func() dto.CourtCreateRequest {
		return dto.CourtCreateRequest{
			Name:        "Center Court",
			SurfaceType: constant.CourtSurfaceHard,
			OpenTime:    "08:00",
			CloseTime:   "22:00",
		}
	}

	t.Run("error: malformed open time", func(t *testing.T) {
		req := baseReq()
		req.OpenTime = "8am"

		_, err := service.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrInvalidFields, failure.GetKind(err))
	})

	t.Run("error: open time not before close time", func(t *testing.T) {
		req := baseReq()
		req.OpenTime = "22:00"
		req.CloseTime = "08:00"

		_, err := service.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrInvalidFields, failure.GetKind(err))
	})

	t.Run("success: inline block and default duration fallback", func(t *testing.T) {
		req := baseReq()
		req.Blocks = []dto.RecurringBlockRequest{
			{
				StartTime:       "14:00",
				DurationMinutes: 120,
				Purpose:         constant.BlockPurposeTraining,
				Weekdays:        []int{1, 3},
			},
		}

		courtID := helper.PgUUID(uuid.NewString())

		mockPgx.ExpectBegin()
		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			CreateCourt(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateCourtParams) (pgtype.UUID, error) {
				assert.Equal(t, "Center Court", arg.Name)
				assert.Equal(t, int32(90), arg.DefaultDurationMinutes)
				assert.Equal(t, helper.PgTimeFromMinutes(8*60), arg.OpenTime)

				return courtID, nil
			})
		mockQuerier.EXPECT().
			CreateRecurringBlock(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateRecurringBlockParams) (pgtype.UUID, error) {
				assert.Equal(t, courtID, arg.CourtID)
				assert.Equal(t, int32(0), arg.Position)
				assert.Equal(t, constant.BlockCadenceWeekly, arg.Cadence)
				assert.Equal(t, []int32{1, 3}, arg.Weekdays)

				return helper.PgUUID(uuid.NewString()), nil
			})

		res, err := service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, courtID.String(), res)
		assert.NoError(t, mockPgx.ExpectationsWereMet())
	})
}

func TestCourtService_AddBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	court := fixtureCourt()

	baseReq := func() dto.RecurringBlockRequest {
		return dto.RecurringBlockRequest{
			StartTime:       "14:00",
			DurationMinutes: 120,
			Purpose:         constant.BlockPurposeTraining,
			Weekdays:        []int{1},
		}
	}

	t.Run("error: block crosses midnight", func(t *testing.T) {
		req := baseReq()
		req.StartTime = "23:30"

		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return(nil, nil)

		_, err := service.AddBlock(ctx, court.ID.String(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrInvalidFields, failure.GetKind(err))
	})

	t.Run("success: appended after existing blocks", func(t *testing.T) {
		existing := repository.RecurringBlock{
			ID:       helper.PgUUID(uuid.NewString()),
			CourtID:  court.ID,
			Position: 0,
		}
		blockID := helper.PgUUID(uuid.NewString())

		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockQuerier.EXPECT().
			GetRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return([]repository.RecurringBlock{existing}, nil)
		mockQuerier.EXPECT().
			CreateRecurringBlock(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateRecurringBlockParams) (pgtype.UUID, error) {
				assert.Equal(t, int32(1), arg.Position)
				assert.Equal(t, helper.PgTimeFromMinutes(14*60), arg.StartTime)

				return blockID, nil
			})

		res, err := service.AddBlock(ctx, court.ID.String(), baseReq())

		assert.NoError(t, err)
		assert.Equal(t, blockID.String(), res)
	})
}

func TestCourtService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	court := fixtureCourt()
	courtID := court.ID.String()

	t.Run("error: court not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(repository.Court{}, pgx.ErrNoRows)

		_, err := service.Update(ctx, courtID, dto.CourtUpdateRequest{Name: "New Name"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: no fields to update", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)

		_, err := service.Update(ctx, courtID, dto.CourtUpdateRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: merged hours invalid", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)

		_, err := service.Update(ctx, courtID, dto.CourtUpdateRequest{CloseTime: "07:00"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, constant.BookingErrInvalidFields, failure.GetKind(err))
	})

	t.Run("success: partial update keeps untouched fields", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockQuerier.EXPECT().
			UpdateCourt(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateCourtParams) (pgtype.UUID, error) {
				assert.Equal(t, court.Name, arg.Name)
				assert.Equal(t, court.OpenTime, arg.OpenTime)
				assert.Equal(t, helper.PgTimeFromMinutes(23*60), arg.CloseTime)

				return court.ID, nil
			})

		res, err := service.Update(ctx, courtID, dto.CourtUpdateRequest{CloseTime: "23:00"})

		assert.NoError(t, err)
		assert.Equal(t, courtID, res)
	})
}

func TestCourtService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	court := fixtureCourt()

	t.Run("error: court not found", func(t *testing.T) {
		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(repository.Court{}, pgx.ErrNoRows)

		err := service.Delete(ctx, court.ID.String())

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success: drops blocks and court in one transaction", func(t *testing.T) {
		mockPgx.ExpectBegin()
		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetCourtById(gomock.Any(), gomock.Any(), court.ID).
			Return(court, nil)
		mockQuerier.EXPECT().
			DeleteRecurringBlocksByCourtId(gomock.Any(), gomock.Any(), court.ID).
			Return(nil)
		mockQuerier.EXPECT().
			DeleteCourt(gomock.Any(), gomock.Any(), court.ID).
			Return(nil)

		err := service.Delete(ctx, court.ID.String())

		assert.NoError(t, err)
		assert.NoError(t, mockPgx.ExpectationsWereMet())
	})
}

func TestCourtService_BlockExceptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{
		Cache: config.Cache{
			Duration: 300,
		},
	}

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)

	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRedis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := New(mockPgx, mockQuerier, mockRedis, cfg, mockLogger)

	courtID := helper.PgUUID(uuid.NewString())

	fixtureBlock := func() repository.RecurringBlock {
		return repository.RecurringBlock{
			ID:              helper.PgUUID(uuid.NewString()),
			CourtID:         courtID,
			StartTime:       helper.PgTimeFromMinutes(14 * 60),
			DurationMinutes: 120,
			Purpose:         constant.BlockPurposeTraining,
			Cadence:         constant.BlockCadenceWeekly,
			Weekdays:        []int32{1},
		}
	}

	t.Run("error: block belongs to another court", func(t *testing.T) {
		block := fixtureBlock()
		block.CourtID = helper.PgUUID(uuid.NewString())

		mockQuerier.EXPECT().
			GetRecurringBlockById(gomock.Any(), gomock.Any(), block.ID).
			Return(block, nil)

		_, err := service.AddBlockException(ctx, courtID.String(), block.ID.String(), dto.BlockExceptionRequest{Date: "2030-06-03"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success: add appends the date", func(t *testing.T) {
		block := fixtureBlock()

		mockQuerier.EXPECT().
			GetRecurringBlockById(gomock.Any(), gomock.Any(), block.ID).
			Return(block, nil)
		mockQuerier.EXPECT().
			UpdateRecurringBlockExceptions(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateRecurringBlockExceptionsParams) (pgtype.UUID, error) {
				assert.Len(t, arg.DatesNotApplied, 1)
				assert.Equal(t, "2030-06-03", arg.DatesNotApplied[0].Time.Format(constant.DateFormat))

				return block.ID, nil
			})

		res, err := service.AddBlockException(ctx, courtID.String(), block.ID.String(), dto.BlockExceptionRequest{Date: "2030-06-03"})

		assert.NoError(t, err)
		assert.Equal(t, block.ID.String(), res)
	})

	t.Run("success: add is idempotent for an existing date", func(t *testing.T) {
		block := fixtureBlock()
		block.DatesNotApplied = []pgtype.Date{helper.PgDate("2030-06-03")}

		mockQuerier.EXPECT().
			GetRecurringBlockById(gomock.Any(), gomock.Any(), block.ID).
			Return(block, nil)

		res, err := service.AddBlockException(ctx, courtID.String(), block.ID.String(), dto.BlockExceptionRequest{Date: "2030-06-03"})

		assert.NoError(t, err)
		assert.Equal(t, block.ID.String(), res)
	})

	t.Run("error: remove of an absent date", func(t *testing.T) {
		block := fixtureBlock()

		mockQuerier.EXPECT().
			GetRecurringBlockById(gomock.Any(), gomock.Any(), block.ID).
			Return(block, nil)

		_, err := service.RemoveBlockException(ctx, courtID.String(), block.ID.String(), dto.BlockExceptionRequest{Date: "2030-06-03"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success: remove keeps the other dates", func(t *testing.T) {
		block := fixtureBlock()
		block.DatesNotApplied = []pgtype.Date{
			helper.PgDate("2030-06-03"),
			helper.PgDate("2030-06-10"),
		}

		mockQuerier.EXPECT().
			GetRecurringBlockById(gomock.Any(), gomock.Any(), block.ID).
			Return(block, nil)
		mockQuerier.EXPECT().
			UpdateRecurringBlockExceptions(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateRecurringBlockExceptionsParams) (pgtype.UUID, error) {
				assert.Len(t, arg.DatesNotApplied, 1)
				assert.Equal(t, "2030-06-10", arg.DatesNotApplied[0].Time.Format(constant.DateFormat))

				return block.ID, nil
			})

		res, err := service.RemoveBlockException(ctx, courtID.String(), block.ID.String(), dto.BlockExceptionRequest{Date: "2030-06-03"})

		assert.NoError(t, err)
		assert.Equal(t, block.ID.String(), res)
	})
}

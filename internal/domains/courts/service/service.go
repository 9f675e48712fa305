package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/courtbook/backend/config"
	"github.com/courtbook/backend/internal/domains/courts/dto"
	"github.com/courtbook/backend/internal/domains/courts/repository"
	"github.com/courtbook/backend/pkg/constant"
	"github.com/courtbook/backend/pkg/failure"
	"github.com/courtbook/backend/pkg/gdto"
	"github.com/courtbook/backend/pkg/helper"
	"github.com/courtbook/backend/pkg/logger"
	"github.com/courtbook/backend/pkg/postgres"
	"github.com/courtbook/backend/pkg/redis"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CourtService interface {
	Create(ctx context.Context, req dto.CourtCreateRequest) (string, error)
	Get(ctx context.Context, id string) (dto.CourtDetailResponse, error)
	GetAll(ctx context.Context, req gdto.PaginationRequest) (dto.GetCourtsResponse, error)
	Count(ctx context.Context, req gdto.PaginationRequest) (int, error)
	Update(ctx context.Context, id string, req dto.CourtUpdateRequest) (string, error)
	Delete(ctx context.Context, id string) error
	AddBlock(ctx context.Context, courtID string, req dto.RecurringBlockRequest) (string, error)
	AddBlockException(ctx context.Context, courtID, blockID string, req dto.BlockExceptionRequest) (string, error)
	RemoveBlockException(ctx context.Context, courtID, blockID string, req dto.BlockExceptionRequest) (string, error)
}

type courtService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) CourtService {
	return &courtService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
	}
}

const (
	cacheGetCourtsKey   = "courts"
	cacheCountCourtsKey = "courts:count"
	cacheGetCourtKey    = "court"
	cacheScheduleKey    = "schedule"

	identifier = "service - court - %s"
)

func (s *courtService) Create(ctx context.Context, req dto.CourtCreateRequest) (res string, err error) {
	openTime, err := helper.PgTimeFromString(req.OpenTime)
	if err != nil {
		return res, failure.InvalidFields(constant.BookingErrInvalidFields, "open_time must be in HH:MM format")
	}

	closeTime, err := helper.PgTimeFromString(req.CloseTime)
	if err != nil {
		return res, failure.InvalidFields(constant.BookingErrInvalidFields, "close_time must be in HH:MM format")
	}

	if helper.MinutesFromPgTime(openTime) >= helper.MinutesFromPgTime(closeTime) {
		return res, failure.InvalidFields(constant.BookingErrInvalidFields, "open_time must be before close_time")
	}

	durationMinutes := req.DefaultDurationMinutes
	if durationMinutes == 0 {
		durationMinutes = s.cfg.Booking.DefaultDurationMinutes
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "create - failed to begin transaction: %w", err)

		return res, err
	}

	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "create - failed to rollback transaction: %w", rbErr)
		}
	}()

	courtID, err := s.repo.CreateCourt(ctx, tx, repository.CreateCourtParams{
		Name:                   req.Name,
		SurfaceType:            req.SurfaceType,
		OpenTime:               openTime,
		CloseTime:              closeTime,
		DefaultDurationMinutes: int32(durationMinutes),
	})
	if err != nil {
		s.logger.Error(identifier, "create - failed to create court: %w", err)

		return res, err
	}

	for i, block := range req.Blocks {
		params, err := blockParams(courtID, int32(i), block)
		if err != nil {
			return res, err
		}

		if _, err := s.repo.CreateRecurringBlock(ctx, tx, params); err != nil {
			s.logger.Error(identifier, "create - failed to create recurring block: %w", err)

			return res, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "create - failed to commit transaction: %w", err)

		return res, err
	}

	res = courtID.String()

	s.clearCourtCaches(ctx, "create", res)

	return res, nil
}

func (s *courtService) Get(ctx context.Context, id string) (res dto.CourtDetailResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheGetCourtKey, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	court, err := s.repo.GetCourtById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("court %s - not found", id))
			s.logger.Error(identifier, "get - court not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "get - failed to get court: %w", err)

		return res, err
	}

	blocks, err := s.repo.GetRecurringBlocksByCourtId(ctx, s.db, court.ID)
	if err != nil {
		s.logger.Error(identifier, "get - failed to get recurring blocks: %w", err)

		return res, err
	}

	res = res.FromModel(court, blocks)

	go func() {
		err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "get - failed to save cache: %w", err)
		}
	}()

	return res, nil
}

func (s *courtService) GetAll(ctx context.Context, req gdto.PaginationRequest) (res dto.GetCourtsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetCourtsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetCourtsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "getAll - cache hit for filter %s", req.Filter)

		return cacheRes, nil
	}

	totalItems, err := s.Count(ctx, req)
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to count courts: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	courts, err := s.repo.GetCourts(ctx, s.db, repository.GetCourtsParams{
		Column1: req.Filter,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "getAll - failed to get courts: %w", err)

		return res, err
	}

	res.FromModel(courts, totalItems, limit)

	go func() {
		ctx := context.WithoutCancel(ctx)

		err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "getAll - failed to set cache: %w", err)
		}
	}()

	return res, nil
}

func (s *courtService) Count(ctx context.Context, req gdto.PaginationRequest) (total int, err error) {
	keyArgs := map[string]string{}
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheCountCourtsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		return cacheRes, nil
	}

	totalItems, err := s.repo.CountCourts(ctx, s.db, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "count - failed to count courts: %w", err)

		return total, err
	}

	total = int(totalItems)

	go func() {
		ctx := context.WithoutCancel(ctx)

		err := s.cache.Save(ctx, cacheKey, total, s.cfg.Cache.Duration)
		if err != nil {
			s.logger.Error(identifier, "count - failed to set cache: %w", err)
		}
	}()

	return total, nil
}

func (s *courtService) Update(ctx context.Context, id string, req dto.CourtUpdateRequest) (res string, err error) {
	existingCourt, err := s.repo.GetCourtById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("court %s - not found", id))
		}

		s.logger.Error(identifier, "update - failed to get court: %w", err)

		return res, err
	}

	val := reflect.ValueOf(req)
	typ := reflect.TypeOf(req)

	var updatedFields []string

	for i := range val.NumField() {
		field := val.Field(i)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(i).Tag.Get("json")
		updatedFields = append(updatedFields, fieldName)

		switch fieldName {
		case "name":
			existingCourt.Name = field.Interface().(string)
		case "surface_type":
			existingCourt.SurfaceType = field.Interface().(string)
		case "open_time":
			openTime, convErr := helper.PgTimeFromString(field.Interface().(string))
			if convErr != nil {
				return res, failure.InvalidFields(constant.BookingErrInvalidFields, "open_time must be in HH:MM format")
			}

			existingCourt.OpenTime = openTime
		case "close_time":
			closeTime, convErr := helper.PgTimeFromString(field.Interface().(string))
			if convErr != nil {
				return res, failure.InvalidFields(constant.BookingErrInvalidFields, "close_time must be in HH:MM format")
			}

			existingCourt.CloseTime = closeTime
		case "default_duration_minutes":
			existingCourt.DefaultDurationMinutes = int32(field.Int())
		}
	}

	if len(updatedFields) == 0 {
		s.logger.Error(identifier, "update - at least one field is required to update")

		return res, failure.BadRequestFromString("at least one field is required to update")
	}

	if helper.MinutesFromPgTime(existingCourt.OpenTime) >= helper.MinutesFromPgTime(existingCourt.CloseTime) {
		return res, failure.InvalidFields(constant.BookingErrInvalidFields, "open_time must be before close_time")
	}

	updatedID, err := s.repo.UpdateCourt(ctx, s.db, repository.UpdateCourtParams{
		ID:                     helper.PgUUID(id),
		Name:                   existingCourt.Name,
		SurfaceType:            existingCourt.SurfaceType,
		OpenTime:               existingCourt.OpenTime,
		CloseTime:              existingCourt.CloseTime,
		DefaultDurationMinutes: existingCourt.DefaultDurationMinutes,
	})
	if err != nil {
		s.logger.Error(identifier, "update - failed to update court: %w", err)

		return res, err
	}

	res = updatedID.String()

	s.clearCourtCaches(ctx, "update", id)

	return res, nil
}

func (s *courtService) Delete(ctx context.Context, id string) (err error) {
	_, err = s.repo.GetCourtById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("court %s - not found", id))
		}

		s.logger.Error(identifier, "delete - failed to get court: %w", err)

		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "delete - failed to begin transaction: %w", err)

		return err
	}

	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "delete - failed to rollback transaction: %w", rbErr)
		}
	}()

	if err = s.repo.DeleteRecurringBlocksByCourtId(ctx, tx, helper.PgUUID(id)); err != nil {
		s.logger.Error(identifier, "delete - failed to delete recurring blocks: %w", err)

		return err
	}

	if err = s.repo.DeleteCourt(ctx, tx, helper.PgUUID(id)); err != nil {
		s.logger.Error(identifier, "delete - failed to delete court: %w", err)

		return err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "delete - failed to commit transaction: %w", err)

		return err
	}

	s.clearCourtCaches(ctx, "delete", id)

	return nil
}

func (s *courtService) AddBlock(ctx context.Context, courtID string, req dto.RecurringBlockRequest) (res string, err error) {
	court, err := s.repo.GetCourtById(ctx, s.db, helper.PgUUID(courtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("court %s - not found", courtID))
		}

		s.logger.Error(identifier, "addBlock - failed to get court: %w", err)

		return res, err
	}

	blocks, err := s.repo.GetRecurringBlocksByCourtId(ctx, s.db, court.ID)
	if err != nil {
		s.logger.Error(identifier, "addBlock - failed to get recurring blocks: %w", err)

		return res, err
	}

	params, err := blockParams(court.ID, int32(len(blocks)), req)
	if err != nil {
		return res, err
	}

	blockID, err := s.repo.CreateRecurringBlock(ctx, s.db, params)
	if err != nil {
		s.logger.Error(identifier, "addBlock - failed to create recurring block: %w", err)

		return res, err
	}

	res = blockID.String()

	s.clearCourtCaches(ctx, "addBlock", courtID)

	return res, nil
}

func (s *courtService) AddBlockException(ctx context.Context, courtID, blockID string, req dto.BlockExceptionRequest) (res string, err error) {
	block, err := s.getCourtBlock(ctx, "addBlockException", courtID, blockID)
	if err != nil {
		return res, err
	}

	for _, d := range block.DatesNotApplied {
		if d.Valid && d.Time.Format(constant.DateFormat) == req.Date {
			return blockID, nil
		}
	}

	exceptions := append(block.DatesNotApplied, helper.PgDate(req.Date))

	updatedID, err := s.repo.UpdateRecurringBlockExceptions(ctx, s.db, repository.UpdateRecurringBlockExceptionsParams{
		ID:              block.ID,
		DatesNotApplied: exceptions,
	})
	if err != nil {
		s.logger.Error(identifier, "addBlockException - failed to update exceptions: %w", err)

		return res, err
	}

	res = updatedID.String()

	s.clearCourtCaches(ctx, "addBlockException", courtID)

	return res, nil
}

func (s *courtService) RemoveBlockException(ctx context.Context, courtID, blockID string, req dto.BlockExceptionRequest) (res string, err error) {
	block, err := s.getCourtBlock(ctx, "removeBlockException", courtID, blockID)
	if err != nil {
		return res, err
	}

	kept := block.DatesNotApplied[:0:0]
	found := false

	for _, d := range block.DatesNotApplied {
		if d.Valid && d.Time.Format(constant.DateFormat) == req.Date {
			found = true

			continue
		}

		kept = append(kept, d)
	}

	if !found {
		err = failure.NotFound(fmt.Sprintf("exception %s not found on block %s", req.Date, blockID))
		s.logger.Error(identifier, "removeBlockException - exception not found: %w", err)

		return res, err
	}

	updatedID, err := s.repo.UpdateRecurringBlockExceptions(ctx, s.db, repository.UpdateRecurringBlockExceptionsParams{
		ID:              block.ID,
		DatesNotApplied: kept,
	})
	if err != nil {
		s.logger.Error(identifier, "removeBlockException - failed to update exceptions: %w", err)

		return res, err
	}

	res = updatedID.String()

	s.clearCourtCaches(ctx, "removeBlockException", courtID)

	return res, nil
}

func (s *courtService) getCourtBlock(ctx context.Context, op, courtID, blockID string) (repository.RecurringBlock, error) {
	block, err := s.repo.GetRecurringBlockById(ctx, s.db, helper.PgUUID(blockID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("block %s - not found", blockID))
		}

		s.logger.Error(identifier, op+" - failed to get recurring block: %w", err)

		return block, err
	}

	if block.CourtID.String() != courtID {
		err = failure.NotFound(fmt.Sprintf("block %s not found on court %s", blockID, courtID))
		s.logger.Error(identifier, op+" - block belongs to another court: %w", err)

		return block, err
	}

	return block, nil
}

func (s *courtService) clearCourtCaches(ctx context.Context, op, courtID string) {
	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetCourtKey, courtID)); err != nil {
			s.logger.Error(identifier, op+" - failed to delete cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountCourtsKey, "*")); err != nil {
			s.logger.Error(identifier, op+" - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetCourtsKey, "*")); err != nil {
			s.logger.Error(identifier, op+" - failed to clear cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheScheduleKey, "*")); err != nil {
			s.logger.Error(identifier, op+" - failed to clear cache: %w", err)
		}
	}()
}

func blockParams(courtID pgtype.UUID, position int32, req dto.RecurringBlockRequest) (repository.CreateRecurringBlockParams, error) {
	startTime, err := helper.PgTimeFromString(req.StartTime)
	if err != nil {
		return repository.CreateRecurringBlockParams{}, failure.InvalidFields(constant.BookingErrInvalidFields, "start_time must be in HH:MM format")
	}

	// Blocks are single-day occupations; the computed end must stay on the clock.
	if helper.MinutesFromPgTime(startTime)+req.DurationMinutes > 24*60 {
		return repository.CreateRecurringBlockParams{}, failure.InvalidFields(constant.BookingErrInvalidFields, "block must not cross midnight")
	}

	weekdays := make([]int32, len(req.Weekdays))
	for i, wd := range req.Weekdays {
		weekdays[i] = int32(wd)
	}

	exceptions := make([]pgtype.Date, 0, len(req.DatesNotApplied))
	for _, d := range req.DatesNotApplied {
		exceptions = append(exceptions, helper.PgDate(d))
	}

	return repository.CreateRecurringBlockParams{
		CourtID:         courtID,
		Position:        position,
		StartTime:       startTime,
		DurationMinutes: int32(req.DurationMinutes),
		Purpose:         req.Purpose,
		Cadence:         constant.BlockCadenceWeekly,
		Weekdays:        weekdays,
		Note:            helper.PgString(req.Note),
		DatesNotApplied: exceptions,
	}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/courtbook/backend/config"
	bookingrepo "github.com/courtbook/backend/internal/domains/bookings/repository"
	courtrepo "github.com/courtbook/backend/internal/domains/courts/repository"
	courtservice "github.com/courtbook/backend/internal/domains/courts/service"
	"github.com/courtbook/backend/internal/domains/schedule/dto"
	"github.com/courtbook/backend/pkg/constant"
	"github.com/courtbook/backend/pkg/failure"
	"github.com/courtbook/backend/pkg/helper"
	"github.com/courtbook/backend/pkg/logger"
	"github.com/courtbook/backend/pkg/postgres"
	"github.com/courtbook/backend/pkg/redis"
	"github.com/jackc/pgx/v5"
)

type ScheduleService interface {
	GetDay(ctx context.Context, req dto.DayScheduleRequest) (dto.DayScheduleResponse, error)
	GetWeek(ctx context.Context, req dto.WeekScheduleRequest) (dto.WeekScheduleResponse, error)
}

type scheduleService struct {
	db          postgres.PgxIface
	bookingRepo bookingrepo.Querier
	courtRepo   courtrepo.Querier
	cache       redis.IRedisCache
	cfg         *config.Config
	logger      logger.Interface
}

func New(db postgres.PgxIface, b bookingrepo.Querier, c courtrepo.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) ScheduleService {
	return &scheduleService{
		db:          db,
		bookingRepo: b,
		courtRepo:   c,
		cache:       cache,
		cfg:         cfg,
		logger:      l,
	}
}

const (
	cacheScheduleKey = "schedule"

	identifier = "service - schedule - %s"

	daysPerWeek = 7
)

func (s *scheduleService) GetDay(ctx context.Context, req dto.DayScheduleRequest) (res dto.DayScheduleResponse, err error) {
	keyArgs := map[string]string{}
	keyArgs["court_id"] = req.CourtID
	keyArgs["date"] = req.Date
	cacheKey := helper.BuildCacheKey(cacheScheduleKey, "day:"+helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.DayScheduleResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get day - cache hit for court %s on %s", req.CourtID, req.Date)

		return cacheRes, nil
	}

	court, err := s.courtRepo.GetCourtById(ctx, s.db, helper.PgUUID(req.CourtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("court %s - not found", req.CourtID))
			s.logger.Error(identifier, "get day - court not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "get day - failed to get court: %w", err)

		return res, err
	}

	blocks, err := s.courtRepo.GetRecurringBlocksByCourtId(ctx, s.db, court.ID)
	if err != nil {
		s.logger.Error(identifier, "get day - failed to get recurring blocks: %w", err)

		return res, err
	}

	res, err = s.projectDay(ctx, court, blocks, req.Date)
	if err != nil {
		return res, err
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get day - failed to save cache: %w", err)
		}
	}()

	return res, nil
}

func (s *scheduleService) GetWeek(ctx context.Context, req dto.WeekScheduleRequest) (res dto.WeekScheduleResponse, err error) {
	keyArgs := map[string]string{}
	keyArgs["court_id"] = req.CourtID
	keyArgs["start_date"] = req.StartDate
	cacheKey := helper.BuildCacheKey(cacheScheduleKey, "week:"+helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.WeekScheduleResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get week - cache hit for court %s starting %s", req.CourtID, req.StartDate)

		return cacheRes, nil
	}

	start, err := time.Parse(constant.DateFormat, req.StartDate)
	if err != nil {
		return res, failure.InvalidFields(constant.BookingErrInvalidFields, "start_date must be in YYYY-MM-DD format")
	}

	court, err := s.courtRepo.GetCourtById(ctx, s.db, helper.PgUUID(req.CourtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("court %s - not found", req.CourtID))
			s.logger.Error(identifier, "get week - court not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "get week - failed to get court: %w", err)

		return res, err
	}

	blocks, err := s.courtRepo.GetRecurringBlocksByCourtId(ctx, s.db, court.ID)
	if err != nil {
		s.logger.Error(identifier, "get week - failed to get recurring blocks: %w", err)

		return res, err
	}

	res = dto.WeekScheduleResponse{
		CourtID:   court.ID.String(),
		CourtName: court.Name,
		StartDate: req.StartDate,
		Days:      make([]dto.DayScheduleResponse, 0, daysPerWeek),
	}

	for i := range daysPerWeek {
		date := start.AddDate(0, 0, i).Format(constant.DateFormat)

		day, err := s.projectDay(ctx, court, blocks, date)
		if err != nil {
			return res, err
		}

		res.Days = append(res.Days, day)
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get week - failed to save cache: %w", err)
		}
	}()

	return res, nil
}

// projectDay merges the court's bookings and active recurring blocks for one
// date into a single start-sorted timeline.
func (s *scheduleService) projectDay(ctx context.Context, court courtrepo.Court, blocks []courtrepo.RecurringBlock, date string) (res dto.DayScheduleResponse, err error) {
	weekday, err := helper.WeekdayOf(date)
	if err != nil {
		return res, failure.InvalidFields(constant.BookingErrInvalidFields, "date must be in YYYY-MM-DD format")
	}

	bookings, err := s.bookingRepo.GetBookingsByCourtAndDate(ctx, s.db, bookingrepo.GetBookingsByCourtAndDateParams{
		CourtID:     court.ID,
		BookingDate: helper.PgDate(date),
	})
	if err != nil {
		s.logger.Error(identifier, "project day - failed to get bookings: %w", err)

		return res, err
	}

	openTime, _ := helper.PgTimeToString(court.OpenTime)
	closeTime, _ := helper.PgTimeToString(court.CloseTime)

	res = dto.DayScheduleResponse{
		CourtID:   court.ID.String(),
		CourtName: court.Name,
		Date:      date,
		OpenTime:  openTime,
		CloseTime: closeTime,
		Entries:   []dto.ScheduleEntry{},
	}

	for _, booking := range bookings {
		startTime, _ := helper.PgTimeToString(booking.StartTime)
		endTime, _ := helper.PgTimeToString(booking.EndTime)

		res.Entries = append(res.Entries, dto.ScheduleEntry{
			Type:            dto.EntryTypeBooking,
			RefID:           booking.ID.String(),
			StartTime:       startTime,
			EndTime:         endTime,
			DurationMinutes: int(booking.DurationMinutes),
			Label:           booking.Kind,
			OwnerID:         booking.OwnerID.String(),
		})
	}

	for _, block := range blocks {
		if !courtservice.BlockActiveOn(block, weekday, date) {
			continue
		}

		startMin := helper.MinutesFromPgTime(block.StartTime)

		res.Entries = append(res.Entries, dto.ScheduleEntry{
			Type:            dto.EntryTypeBlock,
			RefID:           block.ID.String(),
			StartTime:       helper.ClockFromMinutes(startMin),
			EndTime:         helper.ClockFromMinutes(startMin + int(block.DurationMinutes)),
			DurationMinutes: int(block.DurationMinutes),
			Label:           block.Purpose,
		})
	}

	sort.SliceStable(res.Entries, func(i, j int) bool {
		return res.Entries[i].StartTime < res.Entries[j].StartTime
	})

	return res, nil
}

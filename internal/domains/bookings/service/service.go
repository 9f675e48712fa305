package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/courtbook/backend/config"
	"github.com/courtbook/backend/internal/domains/bookings/dto"
	"github.com/courtbook/backend/internal/domains/bookings/repository"
	courtrepo "github.com/courtbook/backend/internal/domains/courts/repository"
	courtservice "github.com/courtbook/backend/internal/domains/courts/service"
	"github.com/courtbook/backend/internal/events"
	"github.com/courtbook/backend/pkg/constant"
	"github.com/courtbook/backend/pkg/failure"
	"github.com/courtbook/backend/pkg/gdto"
	"github.com/courtbook/backend/pkg/helper"
	"github.com/courtbook/backend/pkg/logger"
	"github.com/courtbook/backend/pkg/postgres"
	"github.com/courtbook/backend/pkg/redis"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest, actorID, actorRole string) (string, error)
	GetBookingByID(ctx context.Context, id string) (dto.BookingResponse, error)
	GetUserBookings(ctx context.Context, ownerID string, req gdto.PaginationRequest) (dto.GetBookingsResponse, error)
	CountUserBookings(ctx context.Context, ownerID string, req gdto.PaginationRequest) (int, error)
	GetAllBookings(ctx context.Context, req gdto.PaginationRequest) (dto.GetBookingsResponse, error)
	CountAllBookings(ctx context.Context, req gdto.PaginationRequest) (int, error)
	UpdateBooking(ctx context.Context, id string, req dto.UpdateBookingRequest, actorID, actorRole string) (string, error)
	CancelBooking(ctx context.Context, req dto.CancelBookingRequest) error
}

type bookingService struct {
	db        postgres.PgxIface
	repo      repository.Querier
	courtRepo courtrepo.Querier
	publisher events.Publisher
	cache     redis.IRedisCache
	cfg       *config.Config
	logger    logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, c courtrepo.Querier, p events.Publisher, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) BookingService {
	return &bookingService{
		db:        db,
		repo:      r,
		courtRepo: c,
		publisher: p,
		cache:     cache,
		cfg:       cfg,
		logger:    l,
	}
}

const (
	cacheGetBookingKey    = "booking"
	cacheCountBookingsKey = "bookings:count"
	cacheGetBookingsKey   = "bookings"
	cacheScheduleKey      = "schedule"

	identifier = "service - booking - %s"

	// Postgres exclusion and unique violations from the overlap constraint.
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, actorID, actorRole string) (res string, err error) {
	isAdmin := actorRole == constant.UserRoleAdmin

	if !isAdmin {
		isValid, validErr := helper.IsBookingTimeValid(req.Date, req.StartTime)
		if validErr != nil {
			s.logger.Error(identifier, "create - error validating booking time: %w", validErr)

			return res, failure.InvalidFields(constant.BookingErrInvalidFields, "invalid booking date or time format")
		}

		if !isValid {
			s.logger.Error(identifier, "create - booking time is in the past")

			return res, failure.InvalidFields(constant.BookingErrInvalidFields, "booking time cannot be in the past")
		}
	}

	startMin, err := helper.MinutesSinceMidnight(req.StartTime)
	if err != nil {
		s.logger.Error(identifier, "create - error parsing start time: %w", err)

		return res, failure.InvalidFields(constant.BookingErrInvalidFields, "start_time must be in HH:MM format")
	}

	ownerID := actorID
	if req.OwnerID != "" && req.OwnerID != actorID {
		if !isAdmin {
			s.logger.Error(identifier, "create - non admin tried to book for another user")

			return res, failure.ForbiddenKind(constant.BookingErrUnauthorized, "only admins can book on behalf of another user")
		}

		ownerID = req.OwnerID
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "create - error starting transaction: %w", err)

		return res, err
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "create - error rolling back transaction: %w", err)
		}
	}(tx, ctx)

	courtID := helper.PgUUID(req.CourtID.String())

	court, err := s.courtRepo.GetCourtById(ctx, tx, courtID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "create - court not found: %s", courtID.String())

			return res, failure.NotFound("court not found")
		}

		s.logger.Error(identifier, "create - error getting court: %w", err)

		return res, err
	}

	durationMinutes := req.DurationMinutes
	if durationMinutes == 0 {
		durationMinutes = int(court.DefaultDurationMinutes)
	} else if !isAdmin && durationMinutes != int(court.DefaultDurationMinutes) {
		s.logger.Error(identifier, "create - non admin requested a non-default duration")

		return res, failure.ForbiddenKind(constant.BookingErrUnauthorized, "only admins can set a non-default duration")
	}

	if err = s.checkSlot(ctx, tx, "create", court, req.Date, startMin, durationMinutes); err != nil {
		return res, err
	}

	startTime := helper.PgTimeFromMinutes(startMin)
	endTime := helper.PgTimeFromMinutes(startMin + durationMinutes)

	existing, err := s.repo.GetBookingsByCourtAndDate(ctx, tx, repository.GetBookingsByCourtAndDateParams{
		CourtID:     court.ID,
		BookingDate: helper.PgDate(req.Date),
	})
	if err != nil {
		s.logger.Error(identifier, "create - error fetching existing bookings: %w", err)

		return res, err
	}

	if !IsSlotFree(Interval{StartMin: startMin, EndMin: startMin + durationMinutes}, existing) {
		s.logger.Error(identifier, "create - booking overlaps with existing bookings")

		return res, failure.DomainRejection(constant.BookingErrTimeConflict, "court is already booked for this time")
	}

	booking, err := s.repo.InsertBooking(ctx, tx, repository.InsertBookingParams{
		CourtID:         court.ID,
		OwnerID:         helper.PgUUID(ownerID),
		BookingDate:     helper.PgDate(req.Date),
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: int32(durationMinutes),
		Status:          constant.BookingStatusApproved,
		Paid:            helper.PgBool(req.Paid),
		Kind:            req.Kind,
		Participants:    req.Participants,
		Notes:           helper.PgString(req.Notes),
	})
	if err != nil {
		if conflictErr := asTimeConflict(err); conflictErr != nil {
			s.logger.Error(identifier, "create - overlap constraint rejected insert: %w", err)

			return res, conflictErr
		}

		s.logger.Error(identifier, "create - error inserting booking: %w", err)

		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "create - error committing transaction: %w", err)

		return res, err
	}

	res = booking.String()

	endClock, _ := helper.PgTimeToString(endTime)

	if err := s.publisher.ReservationCreated(ctx, events.ReservationCreatedEvent{
		BookingID:    res,
		CourtID:      court.ID.String(),
		OwnerID:      ownerID,
		BookingDate:  req.Date,
		StartTime:    req.StartTime,
		EndTime:      endClock,
		Kind:         req.Kind,
		Participants: req.Participants,
		OccurredAt:   helper.NowInAppTimezone().Format(constant.FullDateFormat),
	}); err != nil {
		s.logger.Error(identifier, "create - error publishing reservation created event: %w", err)
	}

	s.clearBookingCaches(ctx, "create", res)

	return res, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	bookingID := helper.PgUUID(id)

	booking, err := s.repo.GetBookingById(ctx, s.db, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "get - booking not found with ID: %s", bookingID.String())

			return res, failure.NotFound("booking not found")
		}

		s.logger.Error(identifier, "get - error getting booking by ID: %w", err)

		return res, err
	}

	res = res.FromModel(booking)

	court, err := s.courtRepo.GetCourtById(ctx, s.db, booking.CourtID)
	if err == nil {
		res.CourtName = court.Name
	} else {
		s.logger.Error(identifier, "get - error getting court name for ID %s: %w", booking.CourtID.String(), err)
	}

	return res, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, ownerID string, req gdto.PaginationRequest) (res dto.GetBookingsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["owner_id"] = ownerID
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetBookingsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookingsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get user bookings - cache hit for owner: %s", ownerID)

		return cacheRes, nil
	}

	totalItems, err := s.CountUserBookings(ctx, ownerID, req)
	if err != nil {
		s.logger.Error(identifier, "get user bookings - error counting user bookings: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	bookings, err := s.repo.GetBookingsByOwnerId(ctx, s.db, repository.GetBookingsByOwnerIdParams{
		OwnerID: helper.PgUUID(ownerID),
		Column2: req.Filter,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "get user bookings - error getting bookings by owner ID: %w", err)

		return res, err
	}

	res.FromModel(bookings, totalItems, limit)
	res.EnrichWithCourtNames(s.courtNames(ctx, bookings))

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get user bookings - failed to save user bookings to cache: %w", err)
		}
	}()

	return res, nil
}

func (s *bookingService) CountUserBookings(ctx context.Context, ownerID string, req gdto.PaginationRequest) (total int, err error) {
	keyArgs := map[string]string{}
	keyArgs["owner_id"] = ownerID
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheCountBookingsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		return cacheRes, nil
	}

	totalItems, err := s.repo.CountBookingsByOwnerId(ctx, s.db, repository.CountBookingsByOwnerIdParams{
		OwnerID: helper.PgUUID(ownerID),
		Column2: req.Filter,
	})
	if err != nil {
		s.logger.Error(identifier, "count - error counting user bookings: %w", err)

		return total, err
	}

	total = int(totalItems)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, total, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "count - error saving user bookings count to cache: %w", err)
		}
	}()

	return total, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, req gdto.PaginationRequest) (res dto.GetBookingsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetBookingsKey, "all:"+helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookingsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get all bookings - cache hit for key: %s", cacheKey)

		return cacheRes, nil
	}

	totalItems, err := s.CountAllBookings(ctx, req)
	if err != nil {
		s.logger.Error(identifier, "get all bookings - error counting all bookings: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	bookings, err := s.repo.GetAllBookings(ctx, s.db, repository.GetAllBookingsParams{
		Column1: req.Filter,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "get all bookings - error getting all bookings: %w", err)

		return res, err
	}

	res.FromModel(bookings, totalItems, limit)
	res.EnrichWithCourtNames(s.courtNames(ctx, bookings))

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get all bookings - failed to save all bookings to cache: %w", err)
		}
	}()

	return res, nil
}

func (s *bookingService) CountAllBookings(ctx context.Context, req gdto.PaginationRequest) (total int, err error) {
	keyArgs := map[string]string{}
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheCountBookingsKey, "all:"+helper.GenerateUniqueKey(keyArgs))

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		return cacheRes, nil
	}

	totalItems, err := s.repo.CountAllBookings(ctx, s.db, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "count all bookings - error counting all bookings: %w", err)

		return total, err
	}

	total = int(totalItems)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, total, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "count all bookings - error saving all bookings count to cache: %w", err)
		}
	}()

	return total, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, id string, req dto.UpdateBookingRequest, actorID, actorRole string) (res string, err error) {
	isAdmin := actorRole == constant.UserRoleAdmin

	booking, err := s.repo.GetBookingById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, failure.NotFound("booking not found")
		}

		s.logger.Error(identifier, "update - error getting booking: %w", err)

		return res, err
	}

	if !isAdmin && booking.OwnerID.String() != actorID {
		s.logger.Error(identifier, "update - actor %s is not the booking owner", actorID)

		return res, failure.ForbiddenKind(constant.BookingErrUnauthorized, "only the owner or an admin can modify this booking")
	}

	ownerID := booking.OwnerID
	if req.OwnerID != "" && req.OwnerID != booking.OwnerID.String() {
		if !isAdmin {
			s.logger.Error(identifier, "update - non admin tried to reassign the booking owner")

			return res, failure.ForbiddenKind(constant.BookingErrUnauthorized, "only admins can reassign a booking to another user")
		}

		ownerID = helper.PgUUID(req.OwnerID)
	}

	date := booking.BookingDate.Time.Format(constant.DateFormat)
	if req.Date != "" {
		date = req.Date
	}

	startMin := helper.MinutesFromPgTime(booking.StartTime)

	if req.StartTime != "" {
		startMin, err = helper.MinutesSinceMidnight(req.StartTime)
		if err != nil {
			return res, failure.InvalidFields(constant.BookingErrInvalidFields, "start_time must be in HH:MM format")
		}
	}

	durationMinutes := int(booking.DurationMinutes)
	if req.DurationMinutes != 0 {
		durationMinutes = req.DurationMinutes
	}

	kind := booking.Kind
	if req.Kind != "" {
		kind = req.Kind
	}

	participants := booking.Participants
	if req.Participants != nil {
		participants = req.Participants
	}

	paid := booking.Paid
	if req.Paid != nil {
		paid = helper.PgBool(*req.Paid)
	}

	notes := booking.Notes
	if req.Notes != nil {
		notes = helper.PgString(*req.Notes)
	}

	if !isAdmin {
		isValid, validErr := helper.IsBookingTimeValid(date, helper.ClockFromMinutes(startMin))
		if validErr != nil {
			return res, failure.InvalidFields(constant.BookingErrInvalidFields, "invalid booking date or time format")
		}

		if !isValid {
			s.logger.Error(identifier, "update - booking time is in the past")

			return res, failure.InvalidFields(constant.BookingErrInvalidFields, "booking time cannot be in the past")
		}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "update - error starting transaction: %w", err)

		return res, err
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "update - error rolling back transaction: %w", err)
		}
	}(tx, ctx)

	court, err := s.courtRepo.GetCourtById(ctx, tx, booking.CourtID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, failure.NotFound("court not found")
		}

		s.logger.Error(identifier, "update - error getting court: %w", err)

		return res, err
	}

	if !isAdmin && req.DurationMinutes != 0 && req.DurationMinutes != int(court.DefaultDurationMinutes) {
		s.logger.Error(identifier, "update - non admin requested a non-default duration")

		return res, failure.ForbiddenKind(constant.BookingErrUnauthorized, "only admins can set a non-default duration")
	}

	if err = s.checkSlot(ctx, tx, "update", court, date, startMin, durationMinutes); err != nil {
		return res, err
	}

	startTime := helper.PgTimeFromMinutes(startMin)
	endTime := helper.PgTimeFromMinutes(startMin + durationMinutes)

	existing, err := s.repo.GetBookingsByCourtAndDate(ctx, tx, repository.GetBookingsByCourtAndDateParams{
		CourtID:     booking.CourtID,
		BookingDate: helper.PgDate(date),
	})
	if err != nil {
		s.logger.Error(identifier, "update - error fetching existing bookings: %w", err)

		return res, err
	}

	others := existing[:0:0]

	for _, b := range existing {
		if b.ID == booking.ID {
			continue
		}

		others = append(others, b)
	}

	if !IsSlotFree(Interval{StartMin: startMin, EndMin: startMin + durationMinutes}, others) {
		s.logger.Error(identifier, "update - booking overlaps with existing bookings")

		return res, failure.DomainRejection(constant.BookingErrTimeConflict, "court is already booked for this time")
	}

	updatedID, err := s.repo.UpdateBooking(ctx, tx, repository.UpdateBookingParams{
		ID:              booking.ID,
		OwnerID:         ownerID,
		BookingDate:     helper.PgDate(date),
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: int32(durationMinutes),
		Paid:            paid,
		Kind:            kind,
		Participants:    participants,
		Notes:           notes,
	})
	if err != nil {
		if conflictErr := asTimeConflict(err); conflictErr != nil {
			s.logger.Error(identifier, "update - overlap constraint rejected update: %w", err)

			return res, conflictErr
		}

		s.logger.Error(identifier, "update - error updating booking: %w", err)

		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "update - error committing transaction: %w", err)

		return res, err
	}

	res = updatedID.String()

	s.clearBookingCaches(ctx, "update", id)

	return res, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, req dto.CancelBookingRequest) (err error) {
	isAdmin := req.ActorRole == constant.UserRoleAdmin

	booking, err := s.repo.GetBookingById(ctx, s.db, helper.PgUUID(req.BookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return failure.NotFound("booking not found")
		}

		s.logger.Error(identifier, "cancel - error getting booking: %w", err)

		return err
	}

	if !isAdmin && booking.OwnerID.String() != req.ActorID {
		s.logger.Error(identifier, "cancel - actor %s is not the booking owner", req.ActorID)

		return failure.ForbiddenKind(constant.BookingErrUnauthorized, "only the owner or an admin can cancel this booking")
	}

	canceledBy := constant.BookingCanceledByOwner
	if isAdmin && booking.OwnerID.String() != req.ActorID {
		canceledBy = constant.BookingCanceledByAdmin
	}

	err = s.repo.CancelBooking(ctx, s.db, repository.CancelBookingParams{
		ID:         booking.ID,
		CanceledBy: helper.PgString(canceledBy),
	})
	if err != nil {
		s.logger.Error(identifier, "cancel - error canceling booking: %w", err)

		return failure.InternalError(err)
	}

	if err := s.publisher.ReservationDeleted(ctx, events.ReservationDeletedEvent{
		BookingID:   booking.ID.String(),
		CourtID:     booking.CourtID.String(),
		OwnerID:     booking.OwnerID.String(),
		BookingDate: booking.BookingDate.Time.Format(constant.DateFormat),
		CanceledBy:  canceledBy,
		OccurredAt:  helper.NowInAppTimezone().Format(constant.FullDateFormat),
	}); err != nil {
		s.logger.Error(identifier, "cancel - error publishing reservation deleted event: %w", err)
	}

	s.clearBookingCaches(ctx, "cancel", req.BookingID)

	return nil
}

// checkSlot verifies the candidate interval against the court's operating
// hours and recurring blocks, translating the outcome to domain rejections.
func (s *bookingService) checkSlot(ctx context.Context, db repository.DBTX, op string, court courtrepo.Court, date string, startMin, durationMinutes int) error {
	blocks, err := s.courtRepo.GetRecurringBlocksByCourtId(ctx, db, court.ID)
	if err != nil {
		s.logger.Error(identifier, op+" - error getting recurring blocks: %w", err)

		return err
	}

	check, err := courtservice.CheckSlot(court, blocks, date, startMin, durationMinutes)
	if err != nil {
		return failure.InvalidFields(constant.BookingErrInvalidFields, "date must be in YYYY-MM-DD format")
	}

	switch check.Status {
	case courtservice.SlotOutsideHours:
		s.logger.Error(identifier, op+" - requested slot is outside operating hours")

		return failure.DomainRejection(constant.BookingErrOutsideOperatingHours, "requested time is outside the court's operating hours")
	case courtservice.SlotBlockedByRecurring:
		s.logger.Error(identifier, op+" - requested slot collides with recurring block %s", check.BlockID)

		return failure.DomainRejection(constant.BookingErrRecurringBlockConflict, "requested time collides with recurring block "+check.BlockID)
	case courtservice.SlotFree:
	}

	return nil
}

// asTimeConflict maps overlap constraint violations raised by the database to
// the same rejection the in-transaction check produces, so concurrent writers
// racing past the in-transaction check still surface a conflict instead of a 500.
func asTimeConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation) {
		return failure.DomainRejection(constant.BookingErrTimeConflict, "court is already booked for this time")
	}

	return nil
}

func (s *bookingService) courtNames(ctx context.Context, bookings []repository.Booking) map[string]string {
	courtIDs := make(map[string]struct{})

	for _, booking := range bookings {
		courtIDs[booking.CourtID.String()] = struct{}{}
	}

	courtNames := make(map[string]string)

	for courtID := range courtIDs {
		court, err := s.courtRepo.GetCourtById(ctx, s.db, helper.PgUUID(courtID))
		if err == nil {
			courtNames[courtID] = court.Name
		} else {
			s.logger.Error(identifier, "error getting court name for ID %s: %w", courtID, err)
		}
	}

	return courtNames
}

func (s *bookingService) clearBookingCaches(ctx context.Context, op, bookingID string) {
	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetBookingKey, bookingID)); err != nil {
			s.logger.Error(identifier, op+" - error deleting booking from cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, op+" - error clearing bookings cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, op+" - error clearing bookings count cache: %w", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheScheduleKey, "*")); err != nil {
			s.logger.Error(identifier, op+" - error clearing schedule cache: %w", err)
		}
	}()
}

package service

import (
	"time"

	"github.com/courtbook/backend/internal/domains/courts/repository"
	"github.com/courtbook/backend/pkg/constant"
	"github.com/courtbook/backend/pkg/helper"
)

// SlotStatus is the outcome of checking a candidate interval against a
// court's operating policy.
type SlotStatus int

const (
	SlotFree SlotStatus = iota
	SlotOutsideHours
	SlotBlockedByRecurring
)

// SlotCheck carries the status and, for recurring-block collisions, the
// offending block's id.
type SlotCheck struct {
	Status  SlotStatus
	BlockID string
}

// CheckSlot reports whether the candidate interval [startMin, startMin+durationMin)
// on the given date lies within the court's operating hours and clear of every
// recurring block active on that date. Intervals are half-open: a candidate
// that exactly touches a block's boundary does not collide.
func CheckSlot(court repository.Court, blocks []repository.RecurringBlock, date string, startMin, durationMin int) (SlotCheck, error) {
	openMin := helper.MinutesFromPgTime(court.OpenTime)
	closeMin := helper.MinutesFromPgTime(court.CloseTime)
	endMin := startMin + durationMin

	if startMin < openMin || endMin > closeMin {
		return SlotCheck{Status: SlotOutsideHours}, nil
	}

	weekday, err := helper.WeekdayOf(date)
	if err != nil {
		return SlotCheck{}, err
	}

	for _, block := range blocks {
		if !BlockActiveOn(block, weekday, date) {
			continue
		}

		blockStart := helper.MinutesFromPgTime(block.StartTime)
		blockEnd := blockStart + int(block.DurationMinutes)

		if startMin < blockEnd && blockStart < endMin {
			return SlotCheck{
				Status:  SlotBlockedByRecurring,
				BlockID: block.ID.String(),
			}, nil
		}
	}

	return SlotCheck{Status: SlotFree}, nil
}

// BlockActiveOn reports whether a recurring block occupies the court on the
// given date: weekly cadence, the date's weekday is in the block's set, and
// the date is not suspended via dates_not_applied.
func BlockActiveOn(block repository.RecurringBlock, weekday time.Weekday, date string) bool {
	if block.Cadence != constant.BlockCadenceWeekly {
		return false
	}

	var onWeekday bool

	for _, wd := range block.Weekdays {
		if wd == int32(weekday) {
			onWeekday = true

			break
		}
	}

	if !onWeekday {
		return false
	}

	for _, exception := range block.DatesNotApplied {
		if exception.Valid && exception.Time.Format(constant.DateFormat) == date {
			return false
		}
	}

	return true
}

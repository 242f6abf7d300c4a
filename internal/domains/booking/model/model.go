package model

import (
	"time"

	"booker/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldUserName      = "user_name"
	FieldStartDatetime = "start_datetime"
	FieldEndDatetime   = "end_datetime"
)

type Booking struct {
	ID            string    `db:"id"`
	RoomID        string    `db:"room_id"`
	UserName      string    `db:"user_name"`
	StartDatetime time.Time `db:"start_datetime"`
	EndDatetime   time.Time `db:"end_datetime"`
	model.Metadata
}

// Overlaps reports whether the half-open interval [start, end) intersects the
// booking's own [StartDatetime, EndDatetime). Two intervals overlap iff each
// starts before the other ends, so back-to-back bookings do not overlap.
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.StartDatetime.Before(end) && b.EndDatetime.After(start)
}

package dto

import (
	"time"

	"booker/internal/domains/booking/model"
	gDto "booker/shared/dto"
	gModel "booker/shared/model"
	"booker/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID        string    `json:"room_id"        validate:"required"`
	UserName      string    `json:"user_name"      validate:"required,max=100"`
	StartDatetime time.Time `json:"start_datetime" validate:"required"`
	EndDatetime   time.Time `json:"end_datetime"   validate:"required,gtfield=StartDatetime"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		UserName:      c.UserName,
		StartDatetime: c.StartDatetime,
		EndDatetime:   c.EndDatetime,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type BookingResponse struct {
	ID            string `json:"id"`
	RoomID        string `json:"room_id"`
	UserName      string `json:"user_name"`
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.RoomID = model.RoomID
	b.UserName = model.UserName
	b.StartDatetime = timezone.Format(model.StartDatetime, time.RFC3339)
	b.EndDatetime = timezone.Format(model.EndDatetime, time.RFC3339)
	b.Metadata.FromModel(model.Metadata)
}

// ListBookingsRequest carries the optional query filters for listing bookings.
// StartDate and EndDate are calendar dates; a booking matches when its interval
// touches any part of the [StartDate 00:00, EndDate 23:59:59.999999] window.
type ListBookingsRequest struct {
	RoomID    string
	StartDate *time.Time
	EndDate   *time.Time
}

func (l *ListBookingsRequest) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if l.RoomID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    l.RoomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	// A booking ending before the window starts cannot reach into it.
	if l.StartDate != nil {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldEndDatetime,
			Value:    timezone.StartOfDay(*l.StartDate),
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	// A booking starting after the window ends cannot reach back into it.
	if l.EndDate != nil {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStartDatetime,
			Value:    timezone.EndOfDay(*l.EndDate),
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

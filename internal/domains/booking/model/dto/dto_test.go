package dto_test

import (
	"testing"
	"time"

	"booker/internal/domains/booking/model"
	"booker/internal/domains/booking/model/dto"
	gDto "booker/shared/dto"
	gModel "booker/shared/model"
	"booker/shared/timezone"
	"booker/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	start := time.Date(2025, 6, 8, 14, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)

	req := dto.CreateBookingRequest{
		RoomID:        "room-1",
		UserName:      "alice",
		StartDatetime: start,
		EndDatetime:   end,
	}

	booking := req.ToModel()

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.RoomID, booking.RoomID)
	assert.Equal(t, req.UserName, booking.UserName)
	assert.True(t, booking.StartDatetime.Equal(start))
	assert.True(t, booking.EndDatetime.Equal(end))
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, booking.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestCreateBookingRequest_Validation(t *testing.T) {
	start := time.Date(2025, 6, 8, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: dto.CreateBookingRequest{
				RoomID:        "room-1",
				UserName:      "alice",
				StartDatetime: start,
				EndDatetime:   start.Add(time.Hour),
			},
			wantErr: false,
		},
		{
			name: "missing room id",
			req: dto.CreateBookingRequest{
				UserName:      "alice",
				StartDatetime: start,
				EndDatetime:   start.Add(time.Hour),
			},
			wantErr: true,
		},
		{
			name: "missing user name",
			req: dto.CreateBookingRequest{
				RoomID:        "room-1",
				StartDatetime: start,
				EndDatetime:   start.Add(time.Hour),
			},
			wantErr: true,
		},
		{
			name: "end equal to start",
			req: dto.CreateBookingRequest{
				RoomID:        "room-1",
				UserName:      "alice",
				StartDatetime: start,
				EndDatetime:   start,
			},
			wantErr: true,
		},
		{
			name: "end before start",
			req: dto.CreateBookingRequest{
				RoomID:        "room-1",
				UserName:      "alice",
				StartDatetime: start,
				EndDatetime:   start.Add(-time.Hour),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	bookingModel := model.Booking{
		ID:            "test-id",
		RoomID:        "room-1",
		UserName:      "alice",
		StartDatetime: time.Date(2025, 6, 8, 14, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.RoomID, response.RoomID)
	assert.Equal(t, bookingModel.UserName, response.UserName)
	assert.NotEmpty(t, response.StartDatetime)
	assert.NotEmpty(t, response.EndDatetime)
}

func TestListBookingsRequest_ToFilterGroup(t *testing.T) {
	startDate := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		req         dto.ListBookingsRequest
		wantFilters int
	}{
		{
			name:        "no filters",
			req:         dto.ListBookingsRequest{},
			wantFilters: 0,
		},
		{
			name:        "room only",
			req:         dto.ListBookingsRequest{RoomID: "room-1"},
			wantFilters: 1,
		},
		{
			name:        "start date only",
			req:         dto.ListBookingsRequest{StartDate: &startDate},
			wantFilters: 1,
		},
		{
			name: "all filters",
			req: dto.ListBookingsRequest{
				RoomID:    "room-1",
				StartDate: &startDate,
				EndDate:   &endDate,
			},
			wantFilters: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := tt.req.ToFilterGroup()

			assert.Equal(t, gDto.FilterGroupOperatorAnd, group.Operator)
			assert.Len(t, group.Filters, tt.wantFilters)
		})
	}
}

func TestListBookingsRequest_ToFilterGroup_Window(t *testing.T) {
	startDate := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	req := dto.ListBookingsRequest{
		StartDate: &startDate,
		EndDate:   &endDate,
	}

	group := req.ToFilterGroup()
	assert.Len(t, group.Filters, 2)

	startFilter, ok := group.Filters[0].(gDto.Filter)
	assert.True(t, ok)
	assert.Equal(t, model.FieldEndDatetime, startFilter.Field)
	assert.Equal(t, gDto.FilterOperatorGreaterEq, startFilter.Operator)

	windowStart, ok := startFilter.Value.(time.Time)
	assert.True(t, ok)
	assert.True(t, windowStart.Equal(timezone.StartOfDay(startDate)))

	endFilter, ok := group.Filters[1].(gDto.Filter)
	assert.True(t, ok)
	assert.Equal(t, model.FieldStartDatetime, endFilter.Field)
	assert.Equal(t, gDto.FilterOperatorLessEq, endFilter.Operator)

	windowEnd, ok := endFilter.Value.(time.Time)
	assert.True(t, ok)
	assert.True(t, windowEnd.Equal(timezone.EndOfDay(endDate)))
}

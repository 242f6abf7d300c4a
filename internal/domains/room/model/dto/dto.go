package dto

import (
	"booker/internal/domains/room/model"
	gDto "booker/shared/dto"
	gModel "booker/shared/model"
	"booker/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Location string `json:"location" validate:"omitempty,max=100"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Location: c.Location,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type RoomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Metadata.FromModel(model.Metadata)
}

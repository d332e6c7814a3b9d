package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	EventUpcoming  = "upcoming"
	EventOngoing   = "ongoing"
	EventCompleted = "completed"
	EventCancelled = "cancelled"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventTitle  string             `bson:"event_title" json:"event_title" validate:"required"`
	Date        string             `bson:"date" json:"date" validate:"required"` // ISO date, e.g. 2025-05-20
	Location    string             `bson:"location" json:"location" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Budget      float64            `bson:"budget" json:"budget" validate:"gte=0"`
	Status      string             `bson:"status" json:"status" validate:"oneof=upcoming ongoing completed cancelled"`
	BannerURL   string             `bson:"banner_url,omitempty" json:"banner_url,omitempty" validate:"omitempty,url"`
}

func (e *Event) ApplyDefaults() {
	if e.Status == "" {
		e.Status = EventUpcoming
	}
}

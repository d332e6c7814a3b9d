package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Volunteer is a volunteer profile, kept apart from login accounts.
type Volunteer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Skills       []string           `bson:"skills" json:"skills"`
	Availability string             `bson:"availability,omitempty" json:"availability,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
}

func (v *Volunteer) ApplyDefaults() {
	if v.Skills == nil {
		v.Skills = []string{}
	}
}

// EventVolunteer assigns a volunteer to an event. Duplicate assignments are allowed.
type EventVolunteer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID     string             `bson:"event_id" json:"event_id" validate:"required"`
	VolunteerID string             `bson:"volunteer_id" json:"volunteer_id" validate:"required"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"`
}

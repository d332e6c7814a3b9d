package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	AttendanceManual = "manual"
	AttendanceQR     = "qr"
	AttendanceOTP    = "otp"
)

type Attendance struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID     string             `bson:"event_id" json:"event_id" validate:"required"`
	VolunteerID string             `bson:"volunteer_id" json:"volunteer_id" validate:"required"`
	Method      string             `bson:"method" json:"method" validate:"oneof=manual qr otp"`
	Timestamp   *Timestamp         `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

func (a *Attendance) ApplyDefaults() {
	if a.Method == "" {
		a.Method = AttendanceManual
	}
}

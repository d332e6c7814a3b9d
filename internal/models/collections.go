// Package models holds the typed records stored by the service. Each record
// type lives in its own collection and carries its store-assigned identifier
// in ID, rendered as a hex string under "id" in JSON.
package models

const (
	UserCollection           = "user"
	EventCollection          = "event"
	VolunteerCollection      = "volunteer"
	EventVolunteerCollection = "eventvolunteer"
	DonationCollection       = "donation"
	TaskCollection           = "task"
	AttendanceCollection     = "attendance"
)

// Defaulter is implemented by records with optional fields that take a
// default value when the payload omits them.
type Defaulter interface {
	ApplyDefaults()
}

package resources

import (
	"context"
	"errors"

	"ImpactFlow/internal/auth"
	"ImpactFlow/internal/models"
	"ImpactFlow/internal/store"
	"ImpactFlow/pkg/validation"
)

const eventFilter = "event_id"

// Resources holds one handler per entity collection.
type Resources struct {
	Users           *Handler[models.User]
	Events          *Handler[models.Event]
	Volunteers      *Handler[models.Volunteer]
	EventVolunteers *Handler[models.EventVolunteer]
	Donations       *Handler[models.Donation]
	Tasks           *Handler[models.Task]
	Attendance      *Handler[models.Attendance]
}

func New(s *store.Store, v *validation.Validator, users *auth.UserService) *Resources {
	return &Resources{
		Users: NewHandler(NewService[models.User](
			store.NewCollection[models.User](s, models.UserCollection), v, UserHooks(users.HashPassword),
		), ""),
		Events:          newHandler[models.Event](s, models.EventCollection, v, ""),
		Volunteers:      newHandler[models.Volunteer](s, models.VolunteerCollection, v, ""),
		EventVolunteers: newHandler[models.EventVolunteer](s, models.EventVolunteerCollection, v, eventFilter),
		Donations:       newHandler[models.Donation](s, models.DonationCollection, v, eventFilter),
		Tasks:           newHandler[models.Task](s, models.TaskCollection, v, eventFilter),
		Attendance:      newHandler[models.Attendance](s, models.AttendanceCollection, v, eventFilter),
	}
}

func newHandler[T any](s *store.Store, collection string, v *validation.Validator, filterParam string) *Handler[T] {
	return NewHandler(NewService[T](store.NewCollection[T](s, collection), v, Hooks[T]{}), filterParam)
}

// UserHooks hash the password before insert and strip it from listings.
func UserHooks(hash func(string) (string, error)) Hooks[models.User] {
	return Hooks[models.User]{
		Prepare: func(_ context.Context, u *models.User) error {
			digest, err := hash(u.Password)
			if err != nil {
				return err
			}
			u.Password = digest
			return nil
		},
		Sanitize: func(u *models.User) { u.Sanitize() },
		MapError: func(err error) error {
			if errors.Is(err, store.ErrDuplicateKey) {
				return auth.ErrDuplicateIdentity
			}
			return err
		},
	}
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin       = "admin"
	RoleVolunteer   = "volunteer"
	RoleCoordinator = "coordinator"
	RoleDonor       = "donor"
)

var Roles = []string{RoleAdmin, RoleVolunteer, RoleCoordinator, RoleDonor}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role     string             `bson:"role" json:"role" validate:"oneof=admin volunteer coordinator donor"`
	Password string             `bson:"password" json:"password,omitempty" validate:"required"`
	IsActive *bool              `bson:"is_active" json:"is_active"`
}

func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = RoleVolunteer
	}
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}

// Active reports whether the account may log in. Records written before
// is_active existed count as active.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}

// EffectiveRole is the role used for tokens and authorization. Records
// written before roles existed act as volunteers.
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return RoleVolunteer
	}
	return u.Role
}

// Sanitize drops the password digest so the record can leave the service.
func (u *User) Sanitize() {
	u.Password = ""
}

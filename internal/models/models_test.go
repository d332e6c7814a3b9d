package models

import "testing"

func TestApplyDefaults(t *testing.T) {
	u := &User{Name: "Alice"}
	u.ApplyDefaults()
	if u.Role != RoleVolunteer || u.IsActive == nil || !*u.IsActive {
		t.Errorf("user defaults: %+v", u)
	}

	inactive := false
	u = &User{Role: RoleAdmin, IsActive: &inactive}
	u.ApplyDefaults()
	if u.Role != RoleAdmin || *u.IsActive {
		t.Errorf("explicit user fields overwritten: %+v", u)
	}

	e := &Event{}
	e.ApplyDefaults()
	if e.Status != EventUpcoming {
		t.Errorf("event status: %q", e.Status)
	}

	v := &Volunteer{}
	v.ApplyDefaults()
	if v.Skills == nil || len(v.Skills) != 0 {
		t.Errorf("volunteer skills: %#v", v.Skills)
	}

	d := &Donation{}
	d.ApplyDefaults()
	if d.Kind != DonationCash {
		t.Errorf("donation kind: %q", d.Kind)
	}

	k := &Task{}
	k.ApplyDefaults()
	if k.Status != TaskPending {
		t.Errorf("task status: %q", k.Status)
	}

	a := &Attendance{}
	a.ApplyDefaults()
	if a.Method != AttendanceManual {
		t.Errorf("attendance method: %q", a.Method)
	}
}

func TestUserActive(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name   string
		active *bool
		want   bool
	}{
		{"unset", nil, true},
		{"active", &yes, true},
		{"inactive", &no, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (&User{IsActive: tt.active}).Active(); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserSanitize(t *testing.T) {
	u := &User{Email: "a@x.com", Password: "$2a$10$digest"}
	u.Sanitize()
	if u.Password != "" || u.Email != "a@x.com" {
		t.Errorf("Sanitize: %+v", u)
	}
}

func TestUserEffectiveRole(t *testing.T) {
	if got := (&User{}).EffectiveRole(); got != RoleVolunteer {
		t.Errorf("empty role: got %q", got)
	}
	if got := (&User{Role: RoleCoordinator}).EffectiveRole(); got != RoleCoordinator {
		t.Errorf("stored role: got %q", got)
	}
}

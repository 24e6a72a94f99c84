package entity

import (
	"time"
)

// User is the aggregate root for the profile domain.
// Password holds a bcrypt hash and is empty for accounts created through Google.
type User struct {
	ID               string
	Email            string
	Password         string
	Name             string
	WechatID         string
	PreferredName    string
	Bio              string
	Gender           string
	ContactNumber    string
	CurrentAddress   string
	PermanentAddress string
	Birthday         *Date
	Public           bool
	Role             Role
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Profile is a user together with everything a profile page shows.
type Profile struct {
	User
	Experiences  []TimelineItem
	Educations   []TimelineItem
	ProfilePhoto *ProfilePhoto
	Universities []University
}

// UserPatch carries the fields of a partial user update. Nil pointers and
// unset optional fields are left unchanged.
type UserPatch struct {
	Email            *string
	Name             *string
	WechatID         *string
	PreferredName    *string
	Bio              *string
	Gender           *string
	ContactNumber    *string
	CurrentAddress   *string
	PermanentAddress *string
	Birthday         Optional[Date]
	Public           *bool
	Role             *Role
}

// Apply copies every supplied field of p onto u.
func (p UserPatch) Apply(u *User) {
	setIf(&u.Email, p.Email)
	setIf(&u.Name, p.Name)
	setIf(&u.WechatID, p.WechatID)
	setIf(&u.PreferredName, p.PreferredName)
	setIf(&u.Bio, p.Bio)
	setIf(&u.Gender, p.Gender)
	setIf(&u.ContactNumber, p.ContactNumber)
	setIf(&u.CurrentAddress, p.CurrentAddress)
	setIf(&u.PermanentAddress, p.PermanentAddress)
	setIf(&u.Public, p.Public)
	setIf(&u.Role, p.Role)
	p.Birthday.ApplyTo(&u.Birthday)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

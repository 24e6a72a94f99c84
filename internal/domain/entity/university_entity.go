package entity

import "time"

// University is admin-managed reference data.
type University struct {
	ID         int64
	Name       string
	City       string
	State      string
	Conference string
	Division   string
	Category   string
	Region     string
	CreatedAt  time.Time
}

type UniversityPatch struct {
	Name       *string
	City       *string
	State      *string
	Conference *string
	Division   *string
	Category   *string
	Region     *string
}

func (p UniversityPatch) Apply(u *University) {
	setIf(&u.Name, p.Name)
	setIf(&u.City, p.City)
	setIf(&u.State, p.State)
	setIf(&u.Conference, p.Conference)
	setIf(&u.Division, p.Division)
	setIf(&u.Category, p.Category)
	setIf(&u.Region, p.Region)
}

// UniversityLink is the display URL of a university, keyed by its name.
type UniversityLink struct {
	ID   int64
	Name string
	Link string
}

type UniversityLinkPatch struct {
	Name *string
	Link *string
}

func (p UniversityLinkPatch) Apply(l *UniversityLink) {
	setIf(&l.Name, p.Name)
	setIf(&l.Link, p.Link)
}

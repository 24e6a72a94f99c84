package entity

import "time"

// TimelineKind distinguishes the two per-user history lists that share a shape.
type TimelineKind string

const (
	KindExperience TimelineKind = "experience"
	KindEducation  TimelineKind = "education"
)

// MaxTimelineItems caps how many items of one kind a user may hold.
const MaxTimelineItems = 5

// TimelineItem is an Experience or Education row.
type TimelineItem struct {
	ID          int64
	OwnerID     string
	Description string
	Active      bool
	StartDate   Date
	EndDate     *Date
	CreatedAt   time.Time
}

type TimelinePatch struct {
	Description *string
	Active      *bool
	StartDate   *Date
	EndDate     Optional[Date]
}

func (p TimelinePatch) Apply(t *TimelineItem) {
	setIf(&t.Description, p.Description)
	setIf(&t.Active, p.Active)
	setIf(&t.StartDate, p.StartDate)
	p.EndDate.ApplyTo(&t.EndDate)
}

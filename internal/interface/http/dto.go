package handlers

import (
	"github.com/sportsconnect/sportsconnect-api/internal/application"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
)

// Requests.

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"omitempty,shorttext"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// profileRequest is a partial user update; omitted keys stay unchanged.
type profileRequest struct {
	Email            *string                      `json:"email" binding:"omitempty,email"`
	Name             *string                      `json:"name" binding:"omitempty,shorttext"`
	WechatID         *string                      `json:"wechatId" binding:"omitempty,shorttext"`
	PreferredName    *string                      `json:"preferred_name" binding:"omitempty,shorttext"`
	Bio              *string                      `json:"bio" binding:"omitempty,max=1000"`
	Gender           *string                      `json:"gender" binding:"omitempty,shorttext"`
	ContactNumber    *string                      `json:"contact_number" binding:"omitempty,shorttext"`
	CurrentAddress   *string                      `json:"current_address" binding:"omitempty,address"`
	PermanentAddress *string                      `json:"permanent_address" binding:"omitempty,address"`
	Birthday         entity.Optional[entity.Date] `json:"birthday"`
	Public           *bool                        `json:"public"`
}

func (r profileRequest) patch() entity.UserPatch {
	return entity.UserPatch{
		Email:            r.Email,
		Name:             r.Name,
		WechatID:         r.WechatID,
		PreferredName:    r.PreferredName,
		Bio:              r.Bio,
		Gender:           r.Gender,
		ContactNumber:    r.ContactNumber,
		CurrentAddress:   r.CurrentAddress,
		PermanentAddress: r.PermanentAddress,
		Birthday:         r.Birthday,
		Public:           r.Public,
	}
}

type adminUserUpdateRequest struct {
	profileRequest
	Role *entity.Role `json:"role" binding:"omitempty,role"`
}

func (r adminUserUpdateRequest) patch() entity.UserPatch {
	p := r.profileRequest.patch()
	p.Role = r.Role
	return p
}

type adminUserCreateRequest struct {
	ID             string       `json:"id" binding:"omitempty,max=128"`
	Email          string       `json:"email" binding:"required,email"`
	Password       string       `json:"password" binding:"omitempty,pwd"`
	Name           string       `json:"name" binding:"omitempty,shorttext"`
	WechatID       string       `json:"wechatId" binding:"omitempty,shorttext"`
	Gender         string       `json:"gender" binding:"omitempty,shorttext"`
	ContactNumber  string       `json:"contact_number" binding:"omitempty,shorttext"`
	CurrentAddress string       `json:"current_address" binding:"omitempty,address"`
	Birthday       *entity.Date `json:"birthday"`
	Public         bool         `json:"public"`
	Role           entity.Role  `json:"role" binding:"omitempty,role"`
}

func (r adminUserCreateRequest) user() entity.User {
	return entity.User{
		ID:             r.ID,
		Email:          r.Email,
		Name:           r.Name,
		WechatID:       r.WechatID,
		Gender:         r.Gender,
		ContactNumber:  r.ContactNumber,
		CurrentAddress: r.CurrentAddress,
		Birthday:       r.Birthday,
		Public:         r.Public,
		Role:           r.Role,
	}
}

type timelineRequest struct {
	Description string       `json:"description" binding:"required,shorttext"`
	Active      *bool        `json:"active" binding:"required"`
	StartDate   *entity.Date `json:"start_date" binding:"required"`
	EndDate     *entity.Date `json:"end_date"`
}

func (r timelineRequest) input() application.TimelineInput {
	return application.TimelineInput{
		Description: r.Description,
		Active:      *r.Active,
		StartDate:   *r.StartDate,
		EndDate:     r.EndDate,
	}
}

type timelinePatchRequest struct {
	Description *string                      `json:"description" binding:"omitempty,shorttext"`
	Active      *bool                        `json:"active"`
	StartDate   *entity.Date                 `json:"start_date"`
	EndDate     entity.Optional[entity.Date] `json:"end_date"`
}

func (r timelinePatchRequest) patch() entity.TimelinePatch {
	return entity.TimelinePatch{
		Description: r.Description,
		Active:      r.Active,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

type universityRequest struct {
	Name       string `json:"name" binding:"required,shorttext"`
	City       string `json:"city" binding:"required,shorttext"`
	State      string `json:"state" binding:"required,shorttext"`
	Conference string `json:"conference" binding:"required,shorttext"`
	Division   string `json:"division" binding:"required,shorttext"`
	Region     string `json:"region" binding:"required,shorttext"`
	Category   string `json:"category" binding:"required,shorttext"`
}

func (r universityRequest) university() entity.University {
	return entity.University{
		Name:       r.Name,
		City:       r.City,
		State:      r.State,
		Conference: r.Conference,
		Division:   r.Division,
		Region:     r.Region,
		Category:   r.Category,
	}
}

type universityPatchRequest struct {
	Name       *string `json:"name" binding:"omitempty,shorttext"`
	City       *string `json:"city" binding:"omitempty,shorttext"`
	State      *string `json:"state" binding:"omitempty,shorttext"`
	Conference *string `json:"conference" binding:"omitempty,shorttext"`
	Division   *string `json:"division" binding:"omitempty,shorttext"`
	Region     *string `json:"region" binding:"omitempty,shorttext"`
	Category   *string `json:"category" binding:"omitempty,shorttext"`
}

func (r universityPatchRequest) patch() entity.UniversityPatch {
	return entity.UniversityPatch{
		Name:       r.Name,
		City:       r.City,
		State:      r.State,
		Conference: r.Conference,
		Division:   r.Division,
		Region:     r.Region,
		Category:   r.Category,
	}
}

type linkRequest struct {
	Name string `json:"name" binding:"required,shorttext"`
	Link string `json:"link" binding:"required,max=500"`
}

type linkPatchRequest struct {
	Name *string `json:"name" binding:"omitempty,shorttext"`
	Link *string `json:"link" binding:"omitempty,max=500"`
}

type contactRequest struct {
	Name    string `json:"name" binding:"required,shorttext"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=5000"`
}

// Responses.

type timelineResponse struct {
	ID          int64        `json:"id"`
	Description string       `json:"description"`
	Active      bool         `json:"active"`
	StartDate   entity.Date  `json:"start_date"`
	EndDate     *entity.Date `json:"end_date"`
}

func toTimeline(it entity.TimelineItem) timelineResponse {
	return timelineResponse{
		ID:          it.ID,
		Description: it.Description,
		Active:      it.Active,
		StartDate:   it.StartDate,
		EndDate:     it.EndDate,
	}
}

func toTimelines(items []entity.TimelineItem) []timelineResponse {
	out := make([]timelineResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toTimeline(it))
	}
	return out
}

type photoResponse struct {
	ID        int64  `json:"id"`
	PhotoName string `json:"photo_name"`
	PhotoURL  string `json:"photo_url"`
	IsDeleted bool   `json:"is_deleted"`
}

type universityResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	State      string `json:"state"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
	Region     string `json:"region"`
	Category   string `json:"category"`
	Interested *bool  `json:"interested"`
}

func toUniversity(u entity.University) universityResponse {
	return universityResponse{
		ID:         u.ID,
		Name:       u.Name,
		City:       u.City,
		State:      u.State,
		Conference: u.Conference,
		Division:   u.Division,
		Region:     u.Region,
		Category:   u.Category,
	}
}

func toUniversities(unis []entity.University) []universityResponse {
	out := make([]universityResponse, 0, len(unis))
	for _, u := range unis {
		out = append(out, toUniversity(u))
	}
	return out
}

// universityViewResponse is a directory row with the reader's flag and link.
type universityViewResponse struct {
	universityResponse
	Link string `json:"link"`
}

func toUniversityViews(views []application.UniversityView) []universityViewResponse {
	out := make([]universityViewResponse, 0, len(views))
	for _, v := range views {
		r := universityViewResponse{universityResponse: toUniversity(v.University), Link: v.Link}
		interested := v.Interested
		r.Interested = &interested
		out = append(out, r)
	}
	return out
}

type userResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Email            string               `json:"email"`
	WechatID         string               `json:"wechatId"`
	PreferredName    string               `json:"preferred_name"`
	Bio              string               `json:"bio"`
	Gender           string               `json:"gender"`
	ContactNumber    string               `json:"contact_number"`
	CurrentAddress   string               `json:"current_address"`
	PermanentAddress string               `json:"permanent_address"`
	Birthday         *entity.Date         `json:"birthday"`
	Public           bool                 `json:"public"`
	Experiences      []timelineResponse   `json:"experiences"`
	Educations       []timelineResponse   `json:"educations"`
	ProfilePhoto     []photoResponse      `json:"profile_photo"`
	Unis             []universityResponse `json:"unis"`
}

func toUser(p *entity.Profile) userResponse {
	photos := []photoResponse{}
	if ph := p.ProfilePhoto; ph != nil {
		photos = append(photos, photoResponse{ID: ph.ID, PhotoName: ph.PhotoName, PhotoURL: ph.PhotoURL, IsDeleted: ph.IsDeleted})
	}
	return userResponse{
		ID:               p.ID,
		Name:             p.Name,
		Email:            p.Email,
		WechatID:         p.WechatID,
		PreferredName:    p.PreferredName,
		Bio:              p.Bio,
		Gender:           p.Gender,
		ContactNumber:    p.ContactNumber,
		CurrentAddress:   p.CurrentAddress,
		PermanentAddress: p.PermanentAddress,
		Birthday:         p.Birthday,
		Public:           p.Public,
		Experiences:      toTimelines(p.Experiences),
		Educations:       toTimelines(p.Educations),
		ProfilePhoto:     photos,
		Unis:             toUniversities(p.Universities),
	}
}

// meResponse is the caller's own profile; it also exposes the role.
type meResponse struct {
	userResponse
	Role entity.Role `json:"role"`
}

func toMe(p *entity.Profile) meResponse {
	return meResponse{userResponse: toUser(p), Role: p.Role}
}

type adminUserResponse struct {
	ID             string       `json:"id"`
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	WechatID       string       `json:"wechatId"`
	Gender         string       `json:"gender"`
	ContactNumber  string       `json:"contact_number"`
	CurrentAddress string       `json:"current_address"`
	Birthday       *entity.Date `json:"birthday"`
	Public         bool         `json:"public"`
	Role           entity.Role  `json:"role"`
}

func toAdminUser(u entity.User) adminUserResponse {
	return adminUserResponse{
		ID:             u.ID,
		Username:       u.ID,
		Email:          u.Email,
		Name:           u.Name,
		WechatID:       u.WechatID,
		Gender:         u.Gender,
		ContactNumber:  u.ContactNumber,
		CurrentAddress: u.CurrentAddress,
		Birthday:       u.Birthday,
		Public:         u.Public,
		Role:           u.Role,
	}
}

type linkResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
}

func toLink(l entity.UniversityLink) linkResponse {
	return linkResponse{ID: l.ID, Name: l.Name, Link: l.Link}
}

// sessionUserResponse is returned when a session starts.
type sessionUserResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  entity.Role `json:"role"`
}

func toSessionUser(u *entity.User) sessionUserResponse {
	return sessionUserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// mapSlice converts every element of in with fn.
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

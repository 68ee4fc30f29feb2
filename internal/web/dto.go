package web

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"campushub/internal/domain"
	"campushub/internal/normalize"
	"campushub/internal/service"
)

var (
	ErrMissingCode  = errors.New("missing authorization code")
	ErrMissingName  = errors.New("event name is required")
	ErrMissingDate  = errors.New("event date is required")
	ErrMissingEmail = errors.New("email is required")
	ErrBadFormField = errors.New("form fields need a label")
)

type loginRequest struct {
	Code string `json:"code"`
}

func (r loginRequest) Validate() error {
	if r.Code == "" {
		return ErrMissingCode
	}
	return nil
}

type updateProfileRequest struct {
	Department *string   `json:"department"`
	Hostel     *string   `json:"hostel"`
	Year       *int      `json:"year"`
	PhotoURL   *string   `json:"photo_url"`
	Interests  *[]string `json:"interests"`
}

func (r updateProfileRequest) convert() service.ProfileUpdate {
	return service.ProfileUpdate{
		Department: r.Department,
		Hostel:     r.Hostel,
		Year:       r.Year,
		PhotoURL:   r.PhotoURL,
		Interests:  r.Interests,
	}
}

type formFieldDTO struct {
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type audienceDTO struct {
	Departments []string `json:"depts"`
	Years       []int    `json:"years"`
}

type createEventRequest struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Date         time.Time      `json:"date"`
	Venue        string         `json:"venue"`
	ImageURL     string         `json:"image_url"`
	ManagerEmail string         `json:"manager_email"`
	Tags         []string       `json:"tags"`
	Audience     audienceDTO    `json:"audience"`
	Private      bool           `json:"private"`
	FormSchema   []formFieldDTO `json:"form_schema"`
	Org          string         `json:"org"`
}

func (r createEventRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	if r.Date.IsZero() {
		return ErrMissingDate
	}
	for _, field := range r.FormSchema {
		if field.Label == "" {
			return ErrBadFormField
		}
	}
	return nil
}

func (r createEventRequest) convert() domain.Event {
	schema := make([]domain.FormField, 0, len(r.FormSchema))
	for _, field := range r.FormSchema {
		schema = append(schema, domain.FormField{
			Label:    field.Label,
			Type:     field.Type,
			Required: field.Required,
		})
	}
	return domain.Event{
		Name:         r.Name,
		Description:  r.Description,
		Date:         r.Date.UTC(),
		Venue:        r.Venue,
		ImageURL:     r.ImageURL,
		ManagerEmail: r.ManagerEmail,
		Tags:         r.Tags,
		Audience: domain.Audience{
			Departments: r.Audience.Departments,
			Years:       r.Audience.Years,
		},
		Private:    r.Private,
		FormSchema: schema,
	}
}

type registerRequest struct {
	Answers map[string]string `json:"answers"`
}

type feedbackRequest struct {
	Rating int `json:"rating"`
}

type appointRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r appointRequest) Validate() error {
	if r.Email == "" {
		return ErrMissingEmail
	}
	_, err := domain.ParseRole(r.Role)
	return err
}

type authorizeRequest struct {
	Email   string `json:"email"`
	Org     string `json:"org"`
	OrgType string `json:"org_type"`
	Role    string `json:"role"`
}

func (r authorizeRequest) Validate() error {
	if r.Email == "" {
		return ErrMissingEmail
	}
	if _, err := domain.ParseOrgType(r.OrgType); err != nil {
		return err
	}
	_, err := domain.ParseRole(r.Role)
	return err
}

type orgDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func convertOrg(org domain.OrgRef) orgDTO {
	return orgDTO{
		Name: normalize.Display(org.Name),
		Type: string(org.Type),
	}
}

type eventResponse struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Date         time.Time      `json:"date"`
	Venue        string         `json:"venue"`
	ImageURL     string         `json:"image_url,omitempty"`
	Org          orgDTO         `json:"org"`
	ManagerEmail string         `json:"manager_email,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	Audience     audienceDTO    `json:"audience"`
	Private      bool           `json:"private"`
	FormSchema   []formFieldDTO `json:"form_schema,omitempty"`
	IsRegistered bool           `json:"is_registered"`
}

func convertEvent(ev domain.Event, registered bool) eventResponse {
	schema := make([]formFieldDTO, 0, len(ev.FormSchema))
	for _, field := range ev.FormSchema {
		schema = append(schema, formFieldDTO{
			Label:    field.Label,
			Type:     field.Type,
			Required: field.Required,
		})
	}
	return eventResponse{
		ID:           ev.ID,
		Name:         ev.Name,
		Description:  ev.Description,
		Date:         ev.Date,
		Venue:        ev.Venue,
		ImageURL:     ev.ImageURL,
		Org:          convertOrg(ev.Org),
		ManagerEmail: ev.ManagerEmail,
		Tags:         ev.Tags,
		Audience: audienceDTO{
			Departments: ev.Audience.Departments,
			Years:       ev.Audience.Years,
		},
		Private:      ev.Private,
		FormSchema:   schema,
		IsRegistered: registered,
	}
}

type userResponse struct {
	ID          uuid.UUID `json:"id"`
	EntryNumber string    `json:"entry_number"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Department  string    `json:"department,omitempty"`
	Hostel      string    `json:"hostel,omitempty"`
	Year        int       `json:"year,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Interests   []string  `json:"interests,omitempty"`
	Superuser   bool      `json:"superuser,omitempty"`
}

func convertUser(user domain.User) userResponse {
	return userResponse{
		ID:          user.ID,
		EntryNumber: user.EntryNumber,
		Email:       user.Email,
		Name:        user.Name,
		Department:  user.Department,
		Hostel:      user.Hostel,
		Year:        user.Year,
		PhotoURL:    user.PhotoURL,
		Interests:   user.Interests,
		Superuser:   user.Superuser,
	}
}

type teamMemberResponse struct {
	User userResponse `json:"user"`
	Role string       `json:"role"`
}

type dashboardResponse struct {
	Org           orgDTO `json:"org"`
	Role          string `json:"role"`
	Events        int    `json:"events"`
	Registrations int    `json:"registrations"`
}

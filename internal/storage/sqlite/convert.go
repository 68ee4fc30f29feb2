package sqlite

import (
	"encoding/json"

	"github.com/google/uuid"

	"campushub/gen/model"
	"campushub/internal/domain"
)

func convertUserToDomain(dbUser model.Users) (domain.User, error) {
	id, err := uuid.Parse(dbUser.ID)
	if err != nil {
		return domain.User{}, err
	}
	interests, err := decodeStrings(dbUser.Interests)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:          id,
		EntryNumber: dbUser.EntryNumber,
		Email:       dbUser.Email,
		Name:        dbUser.Name,
		Department:  fromPtr(dbUser.Department),
		Hostel:      fromPtr(dbUser.Hostel),
		Year:        int(fromPtr(dbUser.Year)),
		PhotoURL:    fromPtr(dbUser.PhotoURL),
		Interests:   interests,
		Active:      dbUser.IsActive,
		Superuser:   dbUser.IsSuperuser,
		CreatedAt:   dbUser.CreatedAt,
	}, nil
}

func convertUserFromDomain(user domain.User) model.Users {
	return model.Users{
		ID:          user.ID.String(),
		EntryNumber: user.EntryNumber,
		Email:       user.Email,
		Name:        user.Name,
		Department:  toPtr(user.Department),
		Hostel:      toPtr(user.Hostel),
		Year:        toPtr(int32(user.Year)),
		PhotoURL:    toPtr(user.PhotoURL),
		Interests:   encodeStrings(user.Interests),
		IsActive:    user.Active,
		IsSuperuser: user.Superuser,
		CreatedAt:   user.CreatedAt,
	}
}

func convertRoleToDomain(dbRole model.AuthRoles) (domain.RoleAssignment, error) {
	id, err := uuid.Parse(dbRole.ID)
	if err != nil {
		return domain.RoleAssignment{}, err
	}
	userID, err := uuid.Parse(dbRole.UserID)
	if err != nil {
		return domain.RoleAssignment{}, err
	}
	return domain.RoleAssignment{
		ID:     id,
		UserID: userID,
		Org: domain.OrgRef{
			Name: dbRole.OrgName,
			Type: domain.OrgType(dbRole.OrgType),
		},
		Role: domain.Role(dbRole.RoleName),
	}, nil
}

func convertRolesToDomain(dbRoles []model.AuthRoles) ([]domain.RoleAssignment, error) {
	converted := make([]domain.RoleAssignment, 0, len(dbRoles))
	for _, dbRole := range dbRoles {
		a, err := convertRoleToDomain(dbRole)
		if err != nil {
			return nil, err
		}
		converted = append(converted, a)
	}
	return converted, nil
}

func convertRoleFromDomain(a domain.RoleAssignment) model.AuthRoles {
	return model.AuthRoles{
		ID:       a.ID.String(),
		UserID:   a.UserID.String(),
		OrgName:  a.Org.Name,
		OrgType:  string(a.Org.Type),
		RoleName: string(a.Role),
	}
}

func convertEventToDomain(dbEvent model.Events) (domain.Event, error) {
	id, err := uuid.Parse(dbEvent.ID)
	if err != nil {
		return domain.Event{}, err
	}
	tags, err := decodeStrings(dbEvent.Tags)
	if err != nil {
		return domain.Event{}, err
	}
	var audience domain.Audience
	if dbEvent.Audience != nil && *dbEvent.Audience != "" {
		if err := json.Unmarshal([]byte(*dbEvent.Audience), &audience); err != nil {
			return domain.Event{}, err
		}
	}
	var formSchema []domain.FormField
	if dbEvent.FormSchema != nil && *dbEvent.FormSchema != "" {
		if err := json.Unmarshal([]byte(*dbEvent.FormSchema), &formSchema); err != nil {
			return domain.Event{}, err
		}
	}
	return domain.Event{
		ID:          id,
		Name:        dbEvent.Name,
		Description: dbEvent.Description,
		Date:        dbEvent.Date,
		Venue:       dbEvent.Venue,
		ImageURL:    fromPtr(dbEvent.ImageURL),
		Org: domain.OrgRef{
			Name: dbEvent.OrgName,
			Type: domain.OrgType(dbEvent.OrgType),
		},
		ManagerEmail: dbEvent.ManagerEmail,
		Tags:         tags,
		Audience:     audience,
		Private:      dbEvent.IsPrivate,
		FormSchema:   formSchema,
		CreatedAt:    dbEvent.CreatedAt,
	}, nil
}

func convertEventFromDomain(ev domain.Event) (model.Events, error) {
	var audience *string
	if len(ev.Audience.Departments) > 0 || len(ev.Audience.Years) > 0 {
		b, err := json.Marshal(ev.Audience)
		if err != nil {
			return model.Events{}, err
		}
		audience = toPtr(string(b))
	}
	var formSchema *string
	if len(ev.FormSchema) > 0 {
		b, err := json.Marshal(ev.FormSchema)
		if err != nil {
			return model.Events{}, err
		}
		formSchema = toPtr(string(b))
	}
	return model.Events{
		ID:           ev.ID.String(),
		Name:         ev.Name,
		Description:  ev.Description,
		Date:         ev.Date,
		Venue:        ev.Venue,
		ImageURL:     toPtr(ev.ImageURL),
		OrgName:      ev.Org.Name,
		OrgType:      string(ev.Org.Type),
		ManagerEmail: ev.ManagerEmail,
		Tags:         encodeStrings(ev.Tags),
		Audience:     audience,
		IsPrivate:    ev.Private,
		FormSchema:   formSchema,
		CreatedAt:    ev.CreatedAt,
	}, nil
}

func convertRegistrationToDomain(dbReg model.Registrations) (domain.Registration, error) {
	id, err := uuid.Parse(dbReg.ID)
	if err != nil {
		return domain.Registration{}, err
	}
	userID, err := uuid.Parse(dbReg.UserID)
	if err != nil {
		return domain.Registration{}, err
	}
	eventID, err := uuid.Parse(dbReg.EventID)
	if err != nil {
		return domain.Registration{}, err
	}
	var answers map[string]string
	if dbReg.Answers != nil && *dbReg.Answers != "" {
		if err := json.Unmarshal([]byte(*dbReg.Answers), &answers); err != nil {
			return domain.Registration{}, err
		}
	}
	var rating *int
	if dbReg.Rating != nil {
		r := int(*dbReg.Rating)
		rating = &r
	}
	return domain.Registration{
		ID:           id,
		UserID:       userID,
		EventID:      eventID,
		Answers:      answers,
		Rating:       rating,
		RegisteredAt: dbReg.RegisteredAt,
	}, nil
}

func convertRegistrationsToDomain(dbRegs []model.Registrations) ([]domain.Registration, error) {
	converted := make([]domain.Registration, 0, len(dbRegs))
	for _, dbReg := range dbRegs {
		r, err := convertRegistrationToDomain(dbReg)
		if err != nil {
			return nil, err
		}
		converted = append(converted, r)
	}
	return converted, nil
}

func convertRegistrationFromDomain(reg domain.Registration) (model.Registrations, error) {
	var answers *string
	if len(reg.Answers) > 0 {
		b, err := json.Marshal(reg.Answers)
		if err != nil {
			return model.Registrations{}, err
		}
		answers = toPtr(string(b))
	}
	var rating *int32
	if reg.Rating != nil {
		r := int32(*reg.Rating)
		rating = &r
	}
	return model.Registrations{
		ID:           reg.ID.String(),
		UserID:       reg.UserID.String(),
		EventID:      reg.EventID.String(),
		Answers:      answers,
		Rating:       rating,
		RegisteredAt: reg.RegisteredAt,
	}, nil
}

func encodeStrings(ss []string) *string {
	if len(ss) == 0 {
		return nil
	}
	b, err := json.Marshal(ss)
	if err != nil {
		return nil
	}
	return toPtr(string(b))
}

func decodeStrings(s *string) ([]string, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(*s), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func toPtr[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func fromPtr[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

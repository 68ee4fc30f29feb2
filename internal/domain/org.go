package domain

import (
	"errors"
	"strings"
)

type OrgType string

const (
	OrgTypeClub       OrgType = "club"
	OrgTypeBoard      OrgType = "board"
	OrgTypeSociety    OrgType = "society"
	OrgTypeFest       OrgType = "fest"
	OrgTypeDepartment OrgType = "department"
)

var ErrUnknownOrgType = errors.New("unknown organization type")

// ParseOrgType accepts the loose forms clients send ("Clubs", "club", "CLUB")
// and maps them onto the closed enumeration.
func ParseOrgType(s string) (OrgType, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "societies" {
		lower = "society"
	}
	t := OrgType(strings.TrimSuffix(lower, "s"))
	switch t {
	case OrgTypeClub, OrgTypeBoard, OrgTypeSociety, OrgTypeFest, OrgTypeDepartment:
		return t, nil
	}
	return "", ErrUnknownOrgType
}

// OrgRef identifies an organization by value. Organizations are not managed
// records in this system: holding a RoleAssignment for a name is what makes
// the organization exist.
type OrgRef struct {
	Name string
	Type OrgType
}

package domain

import "testing"

func TestRoleIsHead(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want bool
	}{
		{name: "president", role: RolePresident, want: true},
		{name: "vice president", role: RoleVicePresident, want: true},
		{name: "general secretary", role: RoleGeneralSecretary, want: true},
		{name: "deputy general secretary", role: RoleDeputyGeneralSecretary, want: true},
		{name: "secretary", role: RoleSecretary, want: true},
		{name: "convener", role: RoleConvener, want: true},
		{name: "overall coordinator", role: RoleOverallCoordinator, want: true},
		{name: "coordinator", role: RoleCoordinator, want: false},
		{name: "executive", role: RoleExecutive, want: false},
		{name: "unknown role", role: Role("club head"), want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.role.IsHead(); got != tt.want {
				t.Errorf("IsHead() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Role
		wantErr bool
	}{
		{name: "exact", in: "coordinator", want: RoleCoordinator},
		{name: "mixed case", in: "General  Secretary", want: RoleGeneralSecretary},
		{name: "surrounding space", in: "  executive ", want: RoleExecutive},
		{name: "not a role", in: "supreme leader", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseRole(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseOrgType(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    OrgType
		wantErr bool
	}{
		{name: "canonical", in: "club", want: OrgTypeClub},
		{name: "plural from filter drawer", in: "Clubs", want: OrgTypeClub},
		{name: "plural departments", in: "Departments", want: OrgTypeDepartment},
		{name: "fest", in: "Fest", want: OrgTypeFest},
		{name: "unknown", in: "ministry", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseOrgType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOrgType() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOrgType() = %v, want %v", got, tt.want)
			}
		})
	}
}

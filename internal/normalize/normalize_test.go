package normalize

import "testing"

func TestOrgName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already canonical", in: "devclub", want: "devclub"},
		{name: "mixed case", in: "DevClub", want: "devclub"},
		{name: "spaces collapsed", in: "  Robotics   Club ", want: "robotics club"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := OrgName(tt.in); got != tt.want {
				t.Errorf("OrgName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal("DevClub", "devclub") {
		t.Error("Equal should ignore case")
	}
	if !Equal("Robotics  Club", "robotics club") {
		t.Error("Equal should ignore whitespace runs")
	}
	if Equal("devclub", "robotics club") {
		t.Error("different names must not compare equal")
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("robotics club"); got != "Robotics Club" {
		t.Errorf("Display() = %q, want %q", got, "Robotics Club")
	}
}

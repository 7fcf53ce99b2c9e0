package types_test

import (
	"testing"

	"github.com/appdock-io/appdock/pkg/domain/types"
)

func TestAppType_Validate(t *testing.T) {
	tests := []struct {
		name    string
		typ     types.AppType
		wantErr bool
	}{
		{"valid single word", "zoom", false},
		{"valid with underscore", "zoom_video", false},
		{"valid with hyphen", "google-calendar", false},
		{"valid with numbers", "office365", false},
		{"empty", "", true},
		{"uppercase", "Zoom", true},
		{"spaces", "zoom video", true},
		{"starting with underscore", "_zoom", true},
		{"ending with hyphen", "zoom-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.typ.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("AppType.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.UserID
		wantErr bool
	}{
		{"valid", "u-001", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("UserID.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTeamID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.TeamID
		wantErr bool
	}{
		{"valid", "team-7", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("TeamID.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

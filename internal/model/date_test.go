package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	apperrors "catalog-service/pkg/errors"
)

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"2030-12-31T10:00:00Z"`, time.Date(2030, 12, 31, 10, 0, 0, 0, time.UTC)},
		{"date only is end of day", `"2030-12-31"`, time.Date(2030, 12, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)},
		{"null leaves zero", `null`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(tt.input), &d); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !d.Equal(tt.want) {
				t.Errorf("got %v, want %v", d.Time, tt.want)
			}
		})
	}
}

func TestDateUnmarshalRejects(t *testing.T) {
	for _, input := range []string{`"31/12/2030"`, `20301231`, `"tomorrow"`} {
		var d Date
		err := json.Unmarshal([]byte(input), &d)
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", input, err)
		}
	}
}

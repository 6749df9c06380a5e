package plugin

import (
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "WithCategory",
			info: Info{Name: "Visual", Version: "1.0.0", Vendor: "MusicDevLife", Category: "Fx|Distortion"},
			want: "Visual 1.0.0 (MusicDevLife, Fx|Distortion)",
		},
		{
			name: "WithoutCategory",
			info: Info{Name: "Visual", Version: "0.1.0", Vendor: "MusicDevLife"},
			want: "Visual 0.1.0 (MusicDevLife)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

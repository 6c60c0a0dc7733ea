package screen

import "testing"

func TestProfilePathRoundTrip(t *testing.T) {
	path := ProfilePath("42")
	if path != "/candidates/42/profile" {
		t.Fatalf("unexpected path: %q", path)
	}

	id, err := ParseProfilePath(path)
	if err != nil || id != "42" {
		t.Fatalf("unexpected parse: %q, %v", id, err)
	}
}

func TestParseProfilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		expect  string
		wantErr bool
	}{
		{input: "7", expect: "7"},
		{input: "candidates/7/profile/", expect: "7"},
		{input: "/candidates/a%20b/profile", expect: "a b"},
		{input: "/candidates//profile", wantErr: true},
		{input: "/jobs/7", wantErr: true},
		{input: " ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseProfilePath(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil || got != tt.expect {
				t.Fatalf("ParseProfilePath(%q) = %q, %v", tt.input, got, err)
			}
		})
	}
}

package version

import (
	"testing"
)

func TestParseReleaseTag(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      ReleaseTag
		expectErr bool
	}{
		{
			name:  "Valid release tag",
			input: "r47",
			want:  ReleaseTag{Raw: "r47", Number: 47},
		},
		{
			name:  "Zero release",
			input: "r0",
			want:  ReleaseTag{Raw: "r0", Number: 0},
		},
		{
			name:  "Leading zeros collapse",
			input: "r007",
			want:  ReleaseTag{Raw: "r007", Number: 7},
		},
		{
			name:      "Wrong prefix",
			input:     "v1",
			expectErr: true,
		},
		{
			name:      "Missing digits",
			input:     "r",
			expectErr: true,
		},
		{
			name:      "Negative number",
			input:     "r-1",
			expectErr: true,
		},
		{
			name:      "Empty string",
			input:     "",
			expectErr: true,
		},
		{
			name:      "Uppercase prefix",
			input:     "R47",
			expectErr: true,
		},
		{
			name:      "Trailing garbage",
			input:     "r47x",
			expectErr: true,
		},
		{
			name:      "Surrounding whitespace",
			input:     " r47 ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReleaseTag(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error but got none for input %q", tt.input)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error for input %q: %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("expected %+v, got %+v", tt.want, got)
				}
			}
		})
	}
}

func TestReleaseTagString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"r47", "r47"},
		{"r007", "r7"},
		{"r0", "r0"},
	}

	for _, tt := range tests {
		tag, err := ParseReleaseTag(tt.input)
		if err != nil {
			t.Fatalf("unexpected error for input %q: %v", tt.input, err)
		}
		if got := tag.String(); got != tt.want {
			t.Errorf("ReleaseTag(%q).String() = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestReleaseTagSemVer(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"r47", "47.0.0"},
		{"r007", "7.0.0"},
		{"r0", "0.0.0"},
	}

	for _, tt := range tests {
		tag, err := ParseReleaseTag(tt.input)
		if err != nil {
			t.Fatalf("unexpected error for input %q: %v", tt.input, err)
		}
		if got := tag.SemVer().String(); got != tt.want {
			t.Errorf("ReleaseTag(%q).SemVer() = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Version
		expectErr bool
	}{
		{
			name:  "Valid version",
			input: "47.0.0",
			want:  Version{Major: 47},
		},
		{
			name:      "Missing patch",
			input:     "1.2",
			expectErr: true,
		},
		{
			name:      "Too many segments",
			input:     "1.2.3.4",
			expectErr: true,
		},
		{
			name:      "Non-numeric parts",
			input:     "a.b.c",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error but got none for input %q", tt.input)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error for input %q: %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("expected %+v, got %+v", tt.want, got)
				}
			}
		})
	}
}

func TestSemVerRoundTrip(t *testing.T) {
	tag, err := ParseReleaseTag("r47")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back, err := Parse(tag.SemVer().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Major != tag.Number {
		t.Errorf("round-trip major = %d; want %d", back.Major, tag.Number)
	}
}

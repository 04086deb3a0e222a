package option

import "testing"

func TestParseSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Section
		wantErr bool
	}{
		{raw: "global", want: Section{Type: "global"}},
		{raw: "mon", want: Section{Type: "mon"}},
		{raw: " osd.0 ", want: Section{Type: "osd", ID: "0"}},
		{raw: "client.rgw.zone-a", want: Section{Type: "client", ID: "rgw.zone-a"}},
		{raw: "", wantErr: true},
		{raw: "rgw", wantErr: true},
		{raw: "osd.", wantErr: true},
		{raw: "osd.a b", wantErr: true},
		{raw: "mds..x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSection(tt.raw)
			if tt.wantErr {
				requireValidationField(t, err, "section")
				return
			}
			if err != nil {
				t.Fatalf("ParseSection(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseSection(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSection_String(t *testing.T) {
	t.Parallel()

	if got := (Section{Type: "osd", ID: "3"}).String(); got != "osd.3" {
		t.Errorf("String() = %q, want %q", got, "osd.3")
	}
	if got := (Section{Type: "mon"}).String(); got != "mon" {
		t.Errorf("String() = %q, want %q", got, "mon")
	}
}

func TestCompareSectionStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"global", "mon", -1},
		{"mon", "mgr", -1},
		{"client", "osd", 1},
		{"osd", "osd.0", -1},
		{"osd.2", "osd.10", -1},
		{"client.a", "client.b", -1},
		{"mon", "mon", 0},
		{"bogus", "mon", 1},
		{"zzz", "aaa", 1},
	}

	for _, tt := range tests {
		if got := CompareSectionStrings(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareSectionStrings(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

package clusterconf

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
)

func TestToDomainOption_Scalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dto  OptionDTO
		want func(t *testing.T, got option.Option)
	}{
		{
			name: "empty strings decode to nil",
			dto:  OptionDTO{Name: "ms_type", Type: "str", Default: "async+posix", DaemonDefault: "", Min: "", Max: ""},
			want: func(t *testing.T, got option.Option) {
				t.Helper()
				if got.DaemonDefault != nil || got.Min != nil || got.Max != nil {
					t.Errorf("unset scalars = %v/%v/%v, want nil", got.DaemonDefault, got.Min, got.Max)
				}
				if got.Default != "async+posix" {
					t.Errorf("Default = %v, want async+posix", got.Default)
				}
			},
		},
		{
			name: "whole numbers on uint become int",
			dto:  OptionDTO{Name: "osd_max_backfills", Type: "uint", Default: float64(1), Min: float64(1), Max: float64(64)},
			want: func(t *testing.T, got option.Option) {
				t.Helper()
				if got.Default != 1 || got.Min != 1 || got.Max != 64 {
					t.Errorf("bounds = %v/%v/%v, want 1/1/64", got.Default, got.Min, got.Max)
				}
			},
		},
		{
			name: "float stays float",
			dto:  OptionDTO{Name: "mon_osd_full_ratio", Type: "float", Default: float64(1)},
			want: func(t *testing.T, got option.Option) {
				t.Helper()
				if got.Default != float64(1) {
					t.Errorf("Default = %#v, want float64(1)", got.Default)
				}
			},
		},
		{
			name: "bool passes through",
			dto:  OptionDTO{Name: "mon_allow_pool_delete", Type: "bool", Default: false},
			want: func(t *testing.T, got option.Option) {
				t.Helper()
				if got.Default != false {
					t.Errorf("Default = %#v, want false", got.Default)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.want(t, ToDomainOption(&tt.dto))
		})
	}
}

func TestToDomainOption_Overrides(t *testing.T) {
	t.Parallel()

	got := ToDomainOption(&OptionDTO{
		Name:   "mon_allow_pool_delete",
		Type:   "bool",
		Level:  "advanced",
		Value:  []ValueDTO{{Section: "mon", Value: "true"}},
		Source: "mon",
	})

	if !got.HasOverrides() {
		t.Fatal("HasOverrides() = false, want true")
	}
	if got.Values[0] != (option.Value{Section: "mon", Value: "true"}) {
		t.Errorf("Values[0] = %+v", got.Values[0])
	}
	if got.Source != "mon" {
		t.Errorf("Source = %q, want mon", got.Source)
	}
	if got.Level != option.LevelAdvanced {
		t.Errorf("Level = %q, want advanced", got.Level)
	}
}

func TestToDomainOption_NoOverridesDropsSource(t *testing.T) {
	t.Parallel()

	got := ToDomainOption(&OptionDTO{Name: "ms_type", Type: "str", Source: "mon"})
	if got.HasOverrides() || got.Source != "" {
		t.Errorf("got Values=%v Source=%q, want none", got.Values, got.Source)
	}
}

func TestToDomainOverrideList(t *testing.T) {
	t.Parallel()

	got := ToDomainOverrideList(OverrideListResponseDTO{
		Overrides: []OverrideDTO{
			{Section: "mon", Name: "mon_allow_pool_delete", Value: "true", UpdatedAt: "2026-02-03T04:05:06Z"},
			{Section: "osd", Name: "osd_max_backfills", Value: "2", UpdatedAt: "garbage"},
		},
		Count: 2,
	})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	want := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	if !got[0].UpdatedAt.Equal(want) {
		t.Errorf("UpdatedAt = %v, want %v", got[0].UpdatedAt, want)
	}
	if !got[1].UpdatedAt.IsZero() {
		t.Errorf("unparseable UpdatedAt = %v, want zero", got[1].UpdatedAt)
	}
}

func TestToSetOverrideRequest(t *testing.T) {
	t.Parallel()

	if got := ToSetOverrideRequest("true"); got.Value != "true" {
		t.Errorf("Value = %q, want true", got.Value)
	}
}

package app

import (
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var fixedNow = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// testOptions returns a small catalog in name order.
func testOptions() []option.Option {
	return []option.Option{
		{
			Name:    "mon_allow_pool_delete",
			Type:    option.TypeBool,
			Level:   option.LevelAdvanced,
			Desc:    "allow pool deletions",
			Default: false,
			Tags:    []string{},
			Services: []string{
				"mon",
			},
		},
		{
			Name:       "ms_type",
			Type:       option.TypeStr,
			Level:      option.LevelAdvanced,
			Default:    "async+posix",
			EnumValues: []string{"async+posix", "async+rdma"},
		},
		{
			Name:    "osd_max_backfills",
			Type:    option.TypeUint,
			Level:   option.LevelAdvanced,
			Default: 1,
			Min:     1,
			Max:     64,
		},
	}
}

// newCatalog returns a catalog mock backed by opts. Calls are optional.
func newCatalog(t *testing.T, opts []option.Option) *mocks.MockCatalog {
	t.Helper()

	byName := make(map[string]option.Option, len(opts))
	for _, o := range opts {
		byName[o.Name] = o
	}

	c := mocks.NewMockCatalog(t)
	c.EXPECT().All().RunAndReturn(func() []option.Option {
		return slices.Clone(opts)
	}).Maybe()
	c.EXPECT().Lookup(mock.Anything).RunAndReturn(func(name string) (option.Option, bool) {
		o, ok := byName[name]
		return o, ok
	}).Maybe()
	c.EXPECT().Len().Return(len(opts)).Maybe()
	return c
}

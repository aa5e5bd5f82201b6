package entries

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftlog-dev/shiftlog/internal/blob"
	"github.com/shiftlog-dev/shiftlog/internal/model"
)

func entry(branch, date string) model.Entry {
	return model.Entry{
		RawDate:              date,
		DisplayDate:          "08 Nov 2025",
		Weekday:              "Saturday",
		Month:                "November 2025",
		Branch:               branch,
		TimeIn:               "09:00",
		TimeOut:              "17:30",
		Hours:                "8hrs 30mins",
		DecimalHours:         decimal.RequireFromString("8.5"),
		Gross:                "93.50",
		Net:                  "74.80",
		EmployerContribution: "34.60",
	}
}

func branches(s *Store) []string {
	var out []string
	for _, e := range s.All() {
		out = append(out, e.Branch)
	}
	return out
}

func TestAdd_AssignsIDAndAppends(t *testing.T) {
	s := New(blob.NewMemoryStore(), nil)

	a, err := s.Add(entry("A", "2025-11-08"))
	require.NoError(t, err)
	b, err := s.Add(entry("B", "2025-11-09"))
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, []string{"A", "B"}, branches(s))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Index(b.ID))
}

func TestAdd_DuplicateID(t *testing.T) {
	s := New(blob.NewMemoryStore(), nil)
	e := entry("A", "2025-11-08")
	e.ID = "fixed"
	_, err := s.Add(e)
	require.NoError(t, err)

	_, err = s.Add(e)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestUpdate_KeepsPositionAndID(t *testing.T) {
	s := New(blob.NewMemoryStore(), nil)
	a, _ := s.Add(entry("A", "2025-11-08"))
	b, _ := s.Add(entry("B", "2025-11-09"))
	_, _ = s.Add(entry("C", "2025-11-10"))

	repl := entry("B2", "2025-11-11")
	repl.ID = "ignored"
	got, err := s.Update(b.ID, repl)
	require.NoError(t, err)

	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, []string{"A", "B2", "C"}, branches(s))
	stored, ok := s.Get(b.ID)
	require.True(t, ok)
	assert.Equal(t, "2025-11-11", stored.RawDate)
	_, ok = s.Get("ignored")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Index(a.ID))
}

func TestUpdate_Unknown(t *testing.T) {
	s := New(blob.NewMemoryStore(), nil)
	_, _ = s.Add(entry("A", "2025-11-08"))

	_, err := s.Update("nope", entry("X", "2025-11-08"))
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"A"}, branches(s))
}

func TestRemoveThenAdd(t *testing.T) {
	s := New(blob.NewMemoryStore(), nil)
	_, _ = s.Add(entry("A", "2025-11-08"))
	b, _ := s.Add(entry("B", "2025-11-09"))
	c, _ := s.Add(entry("C", "2025-11-10"))

	removed, err := s.Remove(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Branch)
	assert.Equal(t, 1, s.Index(c.ID), "later entries shift down")

	_, err = s.Add(entry("D", "2025-11-11"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, branches(s))

	_, err = s.Remove(b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, -1, s.Index(b.ID))
}

func TestClear(t *testing.T) {
	s := New(blob.NewMemoryStore(), nil)
	_, _ = s.Add(entry("A", "2025-11-08"))
	_, _ = s.Add(entry("B", "2025-11-09"))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())

	_, err := s.Add(entry("C", "2025-11-10"))
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, branches(s))
}

func TestAll_ReturnsCopy(t *testing.T) {
	s := New(blob.NewMemoryStore(), nil)
	_, _ = s.Add(entry("A", "2025-11-08"))

	all := s.All()
	all[0].Branch = "mutated"
	assert.Equal(t, []string{"A"}, branches(s))
}

func TestPersistLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := blob.NewMemoryStore()
	s := New(b, nil)

	neg := entry("Night", "2025-12-01")
	neg.Month = "December 2025"
	neg.TimeIn, neg.TimeOut = "18:00", "09:00"
	neg.DecimalHours = decimal.NewFromInt(-9)
	neg.Gross, neg.Net, neg.EmployerContribution = "-99.00", "-79.20", "-36.63"

	_, _ = s.Add(entry("A", "2025-11-08"))
	_, _ = s.Add(neg)
	require.NoError(t, s.Persist(ctx))

	got, err := Load(ctx, b, nil)
	require.NoError(t, err)
	require.Equal(t, s.Len(), got.Len())

	want := s.All()
	have := got.All()
	for i := range want {
		assert.Equal(t, want[i].ID, have[i].ID)
		assert.Equal(t, want[i].RawDate, have[i].RawDate)
		assert.Equal(t, want[i].DisplayDate, have[i].DisplayDate)
		assert.Equal(t, want[i].Weekday, have[i].Weekday)
		assert.Equal(t, want[i].Month, have[i].Month)
		assert.Equal(t, want[i].Branch, have[i].Branch)
		assert.Equal(t, want[i].TimeIn, have[i].TimeIn)
		assert.Equal(t, want[i].TimeOut, have[i].TimeOut)
		assert.Equal(t, want[i].Hours, have[i].Hours)
		assert.True(t, want[i].DecimalHours.Equal(have[i].DecimalHours))
		assert.Equal(t, want[i].Gross, have[i].Gross)
		assert.Equal(t, want[i].Net, have[i].Net)
		assert.Equal(t, want[i].EmployerContribution, have[i].EmployerContribution)
	}
}

func TestLoad_MissingOrCorrupt(t *testing.T) {
	ctx := context.Background()

	s, err := Load(ctx, blob.NewMemoryStore(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	for _, raw := range []string{"", "not json", `{"rawDate":"x"}`, `[{"branch":`} {
		b := blob.NewMemoryStore()
		require.NoError(t, b.Set(ctx, []byte(raw)))
		s, err := Load(ctx, b, nil)
		require.NoError(t, err, "blob %q", raw)
		assert.Equal(t, 0, s.Len(), "blob %q", raw)
	}
}

func TestLoad_LegacyBlobWithoutIDs(t *testing.T) {
	ctx := context.Background()
	b := blob.NewMemoryStore()
	legacy := `[
		{"rawDate":"2025-11-08","displayDate":"08 Nov 2025","day":"Saturday","month":"November 2025",
		 "branch":"Orchard","timeIn":"09:00","timeOut":"17:30","hours":"8hrs 30mins",
		 "decimalHours":8.5,"gross":"93.50","net":"74.80","cpf":"34.60"},
		{"rawDate":"2025-11-09","displayDate":"09 Nov 2025","day":"Sunday","month":"November 2025",
		 "branch":"Tampines","timeIn":"10:00","timeOut":"12:00","hours":"2hrs 0mins",
		 "decimalHours":2,"gross":"22.00","net":"17.60","cpf":"8.14"}
	]`
	require.NoError(t, b.Set(ctx, []byte(legacy)))

	s, err := Load(ctx, b, nil)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	all := s.All()
	assert.NotEmpty(t, all[0].ID)
	assert.NotEmpty(t, all[1].ID)
	assert.NotEqual(t, all[0].ID, all[1].ID)
	assert.Equal(t, "Orchard", all[0].Branch)
	assert.Equal(t, "2", all[1].DecimalHours.String())
}

type failingBlob struct{ blob.MemoryStore }

func (f *failingBlob) Get(context.Context) ([]byte, error) { return nil, errors.New("disk gone") }
func (f *failingBlob) Set(context.Context, []byte) error  { return errors.New("disk gone") }

func TestBackendErrorsSurface(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, &failingBlob{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")

	s := New(&failingBlob{}, nil)
	_, _ = s.Add(entry("A", "2025-11-08"))
	err = s.Persist(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persisting entries")
}

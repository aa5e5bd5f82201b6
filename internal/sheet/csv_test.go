package sheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftlog-dev/shiftlog/internal/model"
	"github.com/shiftlog-dev/shiftlog/internal/tracker"
)

func TestWriteEntries(t *testing.T) {
	e := tracker.BuildEntry(tracker.Form{Date: "2025-11-08", Branch: "Orchard, Level 2", TimeIn: "09:00", TimeOut: "17:30"})
	e.ID = "id-1"

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, []model.Entry{e}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, `id-1,2025-11-08,"Orchard, Level 2",09:00,17:30,8hrs 30mins,8.5,93.50,74.80,34.60`, lines[1])
}

func TestExportImportRoundTrip(t *testing.T) {
	forms := []tracker.Form{
		{Date: "2025-11-08", Branch: "Orchard", TimeIn: "09:00", TimeOut: "17:30"},
		{Date: "2025-12-01", Branch: "Night \"B\"", TimeIn: "18:00", TimeOut: "09:00"},
	}
	var original []model.Entry
	for _, f := range forms {
		original = append(original, tracker.BuildEntry(f))
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, original))

	got, err := ReadForms(&buf)
	require.NoError(t, err)
	require.Equal(t, forms, got)

	for i, f := range got {
		rebuilt := tracker.BuildEntry(f)
		assert.Equal(t, original[i].Gross, rebuilt.Gross)
		assert.Equal(t, original[i].Net, rebuilt.Net)
		assert.Equal(t, original[i].EmployerContribution, rebuilt.EmployerContribution)
		assert.True(t, original[i].DecimalHours.Equal(rebuilt.DecimalHours))
	}
}

func TestReadForms_MinimalColumns(t *testing.T) {
	in := "id,date,branch,time_in,time_out\n,2025-11-08,HQ,08:00,12:15\n"
	got, err := ReadForms(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tracker.Form{Date: "2025-11-08", Branch: "HQ", TimeIn: "08:00", TimeOut: "12:15"}, got[0])
}

func TestReadForms_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"no header", "x,2025-11-08,HQ,08:00,12:00\n", "missing timesheet CSV header"},
		{"short row", Header + "\n,2025-11-08,HQ\n", "row 2"},
		{"empty time", Header + "\n,2025-11-08,HQ,,12:00\n", "time_in and time_out are required"},
	}
	for _, tt := range tests {
		_, err := ReadForms(strings.NewReader(tt.in))
		require.Error(t, err, tt.name)
		assert.Contains(t, err.Error(), tt.msg, tt.name)
	}
}

func TestReadForms_Empty(t *testing.T) {
	got, err := ReadForms(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = ReadForms(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

package instance_test

import (
	"strings"
	"testing"

	"github.com/AntonioDantas/RKO/instance"
	"github.com/stretchr/testify/require"
)

// TestReadRecords_Basic parses a header plus three records.
func TestReadRecords_Basic(t *testing.T) {
	src := "id x y p\n1 0 0 5\n2 3.5 -1 2.25\n1001 1 1 100\n"

	recs, err := instance.ReadRecords(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []instance.Record{
		{ID: 1, X: 0, Y: 0, Attr: 5},
		{ID: 2, X: 3.5, Y: -1, Attr: 2.25},
		{ID: 1001, X: 1, Y: 1, Attr: 100},
	}, recs)
}

// TestReadRecords_NoTrailingDuplicate guards against the classic
// "check EOF after the last read" defect: trailing newlines and blank
// lines must not repeat the final record.
func TestReadRecords_NoTrailingDuplicate(t *testing.T) {
	src := "header\n1 0 0 1\n1001 2 2 9\n\n\n"

	recs, err := instance.ReadRecords(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, 1001, recs[1].ID)
}

// TestReadRecords_NoFinalNewline accepts a last line without '\n'.
func TestReadRecords_NoFinalNewline(t *testing.T) {
	recs, err := instance.ReadRecords(strings.NewReader("h\n1 0 0 1\n1001 2 2 9"))
	require.NoError(t, err)
	require.Len(t, recs, 2)
}

// TestReadRecords_Malformed fails fast on partial or non-numeric records.
func TestReadRecords_Malformed(t *testing.T) {
	cases := map[string]string{
		"short trailing": "h\n1 0 0 1\n1001 2",
		"extra field":    "h\n1 0 0 1 7\n",
		"float id":       "h\n1.5 0 0 1\n",
		"bad coord":      "h\n1 zero 0 1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := instance.ReadRecords(strings.NewReader(src))
			require.ErrorIs(t, err, instance.ErrMalformedRecord)
			require.Contains(t, err.Error(), "line ")
		})
	}
}

// TestReadRecords_HeaderOnly yields no records and no error.
func TestReadRecords_HeaderOnly(t *testing.T) {
	recs, err := instance.ReadRecords(strings.NewReader("id x y p\n"))
	require.NoError(t, err)
	require.Empty(t, recs)
}

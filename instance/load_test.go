package instance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/AntonioDantas/RKO/instance"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inst.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "id x y p\n1 3 0 10\n2 3 4 30\n1001 0 0 10\n")

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	in, err := instance.Load(path, instance.WithPolicy(instance.PolicyDistance), instance.WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, 3, in.N())
	require.Equal(t, 5.0, in.MaxDist())
	require.Contains(t, buf.String(), "instance loaded")
	require.Contains(t, buf.String(), "vehicles=1")
}

func TestLoad_Missing(t *testing.T) {
	_, err := instance.Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, instance.ErrOpen)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "h\n1 0 0 1\n1001 0\n")
	_, err := instance.Load(path)
	require.ErrorIs(t, err, instance.ErrMalformedRecord)
}

package file

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBaseline(t *testing.T) (*BaselineStore, string) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	dir := t.TempDir()
	return NewBaselineStore(dir, logger), dir
}

func TestBaseline_MissingFileYieldsEmpty(t *testing.T) {
	store, _ := newTestBaseline(t)

	assert.Empty(t, store.Records())
	assert.Zero(t, store.SampleCount())
}

func TestBaseline_ParsesRecords(t *testing.T) {
	store, dir := newTestBaseline(t)

	csv := "hour,location,level\n8,avs_junction,0.9\n14,market_zone,0.5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, baselineFile), []byte(csv), 0o644))

	records := store.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "avs_junction", records[0]["location"])
	assert.Equal(t, "0.9", records[0]["level"])
	assert.Equal(t, "14", records[1]["hour"])
	assert.Equal(t, 2, store.SampleCount())
}

func TestBaseline_MalformedFileYieldsEmpty(t *testing.T) {
	store, dir := newTestBaseline(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, baselineFile), []byte("a,b\n\"unterminated"), 0o644))
	assert.Empty(t, store.Records())
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSidecarBasicFields(t *testing.T) {
	raw := `{
		"photoTakenTime": {"timestamp": "1609459200"},
		"geoData": {"latitude": 37.1, "longitude": -122.5}
	}`
	rec, err := ParseSidecar([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, int64(1609459200), rec.PhotoTakenTimeUnix)
	assert.Equal(t, 37.1, rec.Latitude)
	assert.Equal(t, -122.5, rec.Longitude)
	assert.False(t, rec.IsPartnerShared)
}

func TestParseSidecarFallsBackToGeoDataExif(t *testing.T) {
	raw := `{
		"geoData": {"latitude": 0, "longitude": 0},
		"geoDataExif": {"latitude": 10.0, "longitude": 20.0}
	}`
	rec, err := ParseSidecar([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 10.0, rec.Latitude)
	assert.Equal(t, 20.0, rec.Longitude)
}

func TestParseSidecarDetectsPartnerSharing(t *testing.T) {
	raw := `{"googlePhotosOrigin": {"fromPartnerSharing": {}}}`
	rec, err := ParseSidecar([]byte(raw))
	require.NoError(t, err)
	assert.True(t, rec.IsPartnerShared)
}

func TestParseSidecarRejectsMalformedJSON(t *testing.T) {
	_, err := ParseSidecar([]byte("not json"))
	assert.Error(t, err)
}

func TestHasCoordinatesTreatsZeroZeroAsAbsent(t *testing.T) {
	rec := &SidecarRecord{Latitude: 0, Longitude: 0}
	assert.False(t, rec.HasCoordinates())

	rec.Latitude = 1.0
	assert.True(t, rec.HasCoordinates())

	var nilRec *SidecarRecord
	assert.False(t, nilRec.HasCoordinates())
}

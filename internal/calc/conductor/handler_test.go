package conductor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Size(t *testing.T) {
	h := &Handler{}

	body, err := json.Marshal(necScenarioRequest())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Size(rec, httptest.NewRequest(http.MethodPost, "/tools/conductor/size", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var res SizingResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "8 AWG", res.RecommendedSize)
	assert.True(t, res.Compliance.IsFullyCompliant)
}

func TestHandler_Size_BadPayload(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Size(rec, httptest.NewRequest(http.MethodPost, "/tools/conductor/size", bytes.NewReader([]byte("{"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Size_InvalidInput(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Size(rec, httptest.NewRequest(http.MethodPost, "/tools/conductor/size",
		bytes.NewReader([]byte(`{"current_amps":-5,"length":10}`))))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_Catalog(t *testing.T) {
	h := &Handler{}

	rec := httptest.NewRecorder()
	h.Catalog(rec, httptest.NewRequest(http.MethodGet, "/tools/conductor/catalog?standard=imperial&material=copper", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []CatalogEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
	assert.Len(t, entries, len(imperialCopper))

	rec = httptest.NewRecorder()
	h.Catalog(rec, httptest.NewRequest(http.MethodGet, "/tools/conductor/catalog?size=4+mm%C2%B2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entry CatalogEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entry))
	assert.Equal(t, 4.0, entry.SizeMM2)

	rec = httptest.NewRecorder()
	h.Catalog(rec, httptest.NewRequest(http.MethodGet, "/tools/conductor/catalog?size=9999+AWG", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryPicksFirstSubstantialParagraph(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Negombo", r.URL.Path)
		w.Write([]byte(`<html><body><div id="mw-content-text">
			<p></p>
			<p>7°12'N 79°50'E</p>
			<p>Negombo is a major city on the west coast of Sri Lanka, known for its long sandy beach and its centuries-old fishing industry.</p>
		</div></body></html>`))
	}))
	defer srv.Close()

	s := NewPlacesService()
	s.baseURL = srv.URL

	summary, err := s.Summary(context.Background(), "Negombo")
	require.NoError(t, err)
	assert.Contains(t, summary, "Negombo is a major city")
}

func TestSummaryMissingPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewPlacesService()
	s.baseURL = srv.URL

	_, err := s.Summary(context.Background(), "Atlantis")
	assert.Error(t, err)
}

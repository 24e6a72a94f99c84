package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
)

func TestDecodeHits(t *testing.T) {
	body := strings.NewReader(`{"hits":{"hits":[{"_id":"4"},{"_id":"x"},{"_id":"2"}]}}`)
	ids, err := decodeHits(body)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2}, ids)
}

func newTestIndex(t *testing.T, h http.HandlerFunc) *UniversityIndex {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewUniversityIndex(es, "universities")
}

func TestUniversityIndex_Search(t *testing.T) {
	var sent string
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/universities/_search", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		sent = string(b)
		_, _ = w.Write([]byte(`{"hits":{"hits":[{"_id":"3"},{"_id":"1"}]}}`))
	})

	ids, err := idx.Search(context.Background(), "state", 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, ids)
	assert.Contains(t, sent, `"multi_match"`)
	assert.Contains(t, sent, `"size":5`)
}

func TestUniversityIndex_Index(t *testing.T) {
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/universities/_doc/7", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	})
	require.NoError(t, idx.Index(context.Background(), entity.University{ID: 7, Name: "Alpha"}))
}

func TestUniversityIndex_RemoveMissingIsNotAnError(t *testing.T) {
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"result":"not_found"}`))
	})
	assert.NoError(t, idx.Remove(context.Background(), 9))
}

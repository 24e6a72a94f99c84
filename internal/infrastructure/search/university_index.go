// Package search indexes the university directory in Elasticsearch.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/sportsconnect/sportsconnect-api/internal/application"
	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// searchFields are boosted so name matches rank above location matches.
var searchFields = []string{"name^3", "city", "state", "conference^2", "division", "region", "category"}

type UniversityIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewUniversityIndex(es *elasticsearch.Client, index string) *UniversityIndex {
	return &UniversityIndex{es: es, index: index}
}

type universityDoc struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	State      string `json:"state"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
	Category   string `json:"category"`
	Region     string `json:"region"`
}

func (x *UniversityIndex) Index(ctx context.Context, u entity.University) error {
	b, err := json.Marshal(universityDoc{
		ID: u.ID, Name: u.Name, City: u.City, State: u.State,
		Conference: u.Conference, Division: u.Division, Category: u.Category, Region: u.Region,
	})
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      x.index,
		DocumentID: strconv.FormatInt(u.ID, 10),
		Body:       bytes.NewReader(b),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

func (x *UniversityIndex) Remove(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{Index: x.index, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}

// Search runs a multi_match query; an empty query matches everything.
func (x *UniversityIndex) Search(ctx context.Context, q string, size int) ([]int64, error) {
	var query map[string]any
	if strings.TrimSpace(q) == "" {
		query = map[string]any{"match_all": map[string]any{}}
	} else {
		query = map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    searchFields,
				"fuzziness": "AUTO",
			},
		}
	}
	b, err := json.Marshal(map[string]any{"query": query, "size": size, "_source": false})
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := x.es.Search(
		x.es.Search.WithContext(c),
		x.es.Search.WithIndex(x.index),
		x.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}
	return decodeHits(res.Body)
}

func decodeHits(body io.Reader) ([]int64, error) {
	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		id, err := strconv.ParseInt(h.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

var _ application.UniversityIndex = (*UniversityIndex)(nil)

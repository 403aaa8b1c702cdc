package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const productIndex = "products"

// IndexProduct upserts one product document into the search index. Callers
// treat a failure as non-fatal: Mongo stays the source of truth.
func IndexProduct(ctx context.Context, p models.Product) error {
	if database.Elastic == nil {
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{
		"name":         p.Name,
		"slug":         p.Slug,
		"code":         p.Code,
		"product_type": p.ProductType,
		"material":     p.Material,
		"description":  p.Description,
		"tags":         p.Tags,
		"price":        p.Price,
		"is_active":    p.IsActive,
	})
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: p.ID.Hex(),
		Body:       bytes.NewReader(body),
		Refresh:    "false",
	}

	res, err := req.Do(ctx, database.Elastic)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elastic index error: %s", res.Status())
	}
	return nil
}

// RemoveProduct drops a product from the search index after deletion.
func RemoveProduct(ctx context.Context, productID string) {
	if database.Elastic == nil {
		return
	}

	req := esapi.DeleteRequest{Index: productIndex, DocumentID: productID}
	res, err := req.Do(ctx, database.Elastic)
	if err != nil {
		log.Printf("⚠️ Elastic delete failed for %s: %v", productID, err)
		return
	}
	res.Body.Close()
}

// SearchProducts runs a multi-field fuzzy query and returns the matching
// product IDs in relevance order.
func SearchProducts(ctx context.Context, query string, limit int) ([]string, error) {
	if database.Elastic == nil {
		return nil, fmt.Errorf("search unavailable")
	}
	if limit <= 0 {
		limit = 20
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":     query,
						"fields":    []string{"name^3", "tags^2", "description", "material", "code"},
						"fuzziness": "AUTO",
					},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"is_active": true},
				},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, err
	}

	res, err := database.Elastic.Search(
		database.Elastic.Search.WithContext(ctx),
		database.Elastic.Search.WithIndex(productIndex),
		database.Elastic.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		return nil, fmt.Errorf("elastic search error: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

// EnsureProductIndex creates the index with keyword mappings on first boot.
// Existing indexes are left alone.
func EnsureProductIndex(ctx context.Context) {
	if database.Elastic == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"name":         {"type": "text"},
				"slug":         {"type": "keyword"},
				"code":         {"type": "keyword"},
				"product_type": {"type": "keyword"},
				"material":     {"type": "keyword"},
				"description":  {"type": "text"},
				"tags":         {"type": "text"},
				"price":        {"type": "double"},
				"is_active":    {"type": "boolean"}
			}
		}
	}`

	req := esapi.IndicesCreateRequest{Index: productIndex, Body: strings.NewReader(mapping)}
	res, err := req.Do(ctx, database.Elastic)
	if err != nil {
		log.Printf("⚠️ Elastic index create failed: %v", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 400 { // 400 = already exists
		log.Printf("⚠️ Elastic index create: %s", res.Status())
		return
	}
	log.Println("🔎 Product search index ready")
}

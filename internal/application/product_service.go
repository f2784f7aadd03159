package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
	repo "github.com/llOrtegall/backend-app-full-stack/internal/domain/repository"
	"github.com/llOrtegall/backend-app-full-stack/pkg/helpers"
)

const productListCacheKey = "products:all"
const productListCacheTTL = 5 * time.Minute

// ProductService orchestrates product creation (duplicate SKU check,
// optional image upload, factory construction, persistence) and the read
// paths around it.
type ProductService struct {
	Repo            repo.ProductRepository
	Storage         FileStorage
	Redis           *redis.Client
	ES              *elasticsearch.Client
	ESProductsIndex string
	Logger          *logrus.Logger
}

func NewProductService(r repo.ProductRepository, storage FileStorage, rdb *redis.Client, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *ProductService {
	return &ProductService{Repo: r, Storage: storage, Redis: rdb, ES: es, ESProductsIndex: esIndex, Logger: logger}
}

// CreateProductInput is the already schema-validated product payload.
type CreateProductInput struct {
	Name        string
	Description string
	Sku         string
	Barcode     string
	Quantity    int
	MinStock    int
	MaxStock    *int
	Cost        *float64
	Price       float64
	Category    string
	Image       string
	Notes       string
}

// Create builds and persists a new product. When an image payload is
// supplied it is uploaded first and the returned reference overrides any
// caller-supplied image string. If a later step fails the uploaded object
// is left behind; there is no rollback at this layer.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput, image *ImageUpload) (*entity.Product, error) {
	if sku := strings.TrimSpace(in.Sku); sku != "" {
		existing, err := s.Repo.GetBySku(ctx, sku)
		if err != nil && !entity.IsKind(err, entity.KindProductNotFound) {
			return nil, fmt.Errorf("check existing product: %w", err)
		}
		if existing != nil {
			return nil, entity.NewProductAlreadyExists(sku)
		}
	}

	imageURL := in.Image
	if image != nil {
		url, err := s.Storage.UploadImage(ctx, *image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		imageURL = url
	}

	p, err := entity.NewProduct(entity.NewProductInput{
		Name:        in.Name,
		Description: in.Description,
		Sku:         in.Sku,
		Barcode:     in.Barcode,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		MaxStock:    in.MaxStock,
		Cost:        in.Cost,
		Price:       in.Price,
		Category:    in.Category,
		Image:       imageURL,
		Notes:       in.Notes,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.invalidateListCache(ctx)
	_ = s.indexProduct(ctx, p)
	return p, nil
}

// GetByID returns a single product; absence surfaces as the NotFound kind.
func (s *ProductService) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all products, served from the Redis cache when warm.
func (s *ProductService) List(ctx context.Context) ([]*entity.Product, error) {
	if s.Redis != nil {
		var cached []*entity.Product
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, productListCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	products, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, productListCacheKey, products, productListCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("failed to cache product list")
		}
	}
	return products, nil
}

func (s *ProductService) invalidateListCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, productListCacheKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("failed to invalidate product list cache")
	}
}

func (s *ProductService) indexProduct(ctx context.Context, p *entity.Product) error {
	if s.ES == nil || s.ESProductsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"sku":         p.Sku,
		"category":    p.Category,
		"price":       p.Price,
		"quantity":    p.Quantity,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESProductsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match query over the product index.
func (s *ProductService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESProductsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "sku^2", "description", "category"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESProductsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

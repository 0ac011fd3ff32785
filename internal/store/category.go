package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/dgraph-io/ristretto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
)

const categoryCacheKey = "categories"

type categoryStore struct {
	client *firestore.Client
	cache  *ristretto.Cache
}

func NewCategoryStore(client *firestore.Client, cache *ristretto.Cache) *categoryStore {
	return &categoryStore{client: client, cache: cache}
}

func (s *categoryStore) collection() *firestore.CollectionRef {
	return s.client.Collection("categories")
}

// List returns all categories ordered by name. Results are served from
// the read cache until the next write invalidates it.
func (s *categoryStore) List(ctx context.Context) ([]models.Category, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(categoryCacheKey); ok {
			if cats, ok := cached.([]models.Category); ok {
				return cats, nil
			}
		}
	}

	docs, err := s.collection().OrderBy("name", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list categories", err)
	}
	cats := make([]models.Category, 0, len(docs))
	for _, d := range docs {
		var c models.Category
		if err := d.DataTo(&c); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse category data", err)
		}
		cats = append(cats, c)
	}

	if s.cache != nil && len(cats) > 0 {
		s.cache.Set(categoryCacheKey, cats, 1)
	}
	return cats, nil
}

func (s *categoryStore) Get(ctx context.Context, categoryID string) (*models.Category, error) {
	doc, err := s.collection().Doc(categoryID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("category not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get category", err)
	}
	var c models.Category
	if err := doc.DataTo(&c); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse category data", err)
	}
	return &c, nil
}

func (s *categoryStore) Create(ctx context.Context, c *models.Category) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	_, err := s.collection().Doc(c.CategoryID).Create(ctx, c)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("category already exists")
		}
		return errs.NewDatabaseError("create", "failed to create category", err)
	}
	s.invalidate()
	return nil
}

func (s *categoryStore) Delete(ctx context.Context, categoryID string) error {
	_, err := s.collection().Doc(categoryID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete category", err)
	}
	s.invalidate()
	return nil
}

func (s *categoryStore) invalidate() {
	if s.cache != nil {
		s.cache.Del(categoryCacheKey)
	}
}

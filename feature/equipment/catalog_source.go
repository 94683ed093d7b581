package equipment

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"armory/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/singleflight"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CatalogSource provides the current item catalog.
type CatalogSource interface {
	Catalog(ctx context.Context) (*Catalog, error)
}

// NewCatalogSource builds the source selected by cfg. The file source is read
// and validated here, once. The storage source needs a client and bucket; the
// other sources ignore them.
func NewCatalogSource(cfg CatalogConfig, client storage.Client, bucket string, logger *zap.Logger) (CatalogSource, error) {
	switch cfg.Source {
	case SourceBuiltin, "":
		return StaticSource{catalog: DefaultCatalog()}, nil
	case SourceFile:
		c, err := LoadCatalogFile(cfg.File)
		if err != nil {
			return nil, err
		}
		return StaticSource{catalog: c}, nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("catalog source %q requires a storage client", cfg.Source)
		}
		return NewStorageSource(client, bucket, cfg.Object, time.Duration(cfg.CacheTTLSeconds)*time.Second, logger), nil
	default:
		return nil, fmt.Errorf("unknown catalog source: %s", cfg.Source)
	}
}

// StaticSource always returns the same catalog.
type StaticSource struct {
	catalog *Catalog
}

// NewStaticSource wraps an already built catalog.
func NewStaticSource(c *Catalog) StaticSource {
	return StaticSource{catalog: c}
}

// Catalog returns the wrapped catalog.
func (s StaticSource) Catalog(context.Context) (*Catalog, error) {
	return s.catalog, nil
}

// LoadCatalogFile reads and validates a YAML catalog file.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := ParseCatalogYAML(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// StorageSource reads a YAML catalog object from the asset bucket and keeps
// it for a TTL. Concurrent reloads are collapsed into one download. Once a
// catalog has loaded, a failed reload is logged and the last good catalog
// is served for another TTL.
type StorageSource struct {
	client storage.Client
	bucket string
	object string
	ttl    time.Duration
	logger *zap.Logger

	mu      sync.RWMutex
	catalog *Catalog
	built   time.Time
	sf      singleflight.Group
}

// NewStorageSource creates a storage-backed catalog source. A zero TTL
// disables caching.
func NewStorageSource(client storage.Client, bucket, object string, ttl time.Duration, logger *zap.Logger) *StorageSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StorageSource{client: client, bucket: bucket, object: object, ttl: ttl, logger: logger}
}

// Catalog returns the cached catalog, downloading it when missing or expired.
func (s *StorageSource) Catalog(ctx context.Context) (*Catalog, error) {
	// Fast path: cached and fresh
	s.mu.RLock()
	c, built := s.catalog, s.built
	s.mu.RUnlock()
	if c != nil && s.fresh(built) {
		return c, nil
	}

	result, err, _ := s.sf.Do(s.object, func() (interface{}, error) {
		s.mu.RLock()
		c, built := s.catalog, s.built
		s.mu.RUnlock()
		if c != nil && s.fresh(built) {
			return c, nil
		}

		fetched, err := s.fetch(ctx)
		if err != nil {
			if c == nil {
				return nil, err
			}
			s.logger.Warn("Catalog reload failed, serving previous catalog",
				zap.String("bucket", s.bucket),
				zap.String("object", s.object),
				zap.Error(err))
			s.mu.Lock()
			s.built = time.Now()
			s.mu.Unlock()
			return c, nil
		}

		s.mu.Lock()
		s.catalog = fetched
		s.built = time.Now()
		s.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Catalog), nil
}

// Invalidate expires the cached catalog so the next call downloads it again.
// The expired catalog is still served if that download fails.
func (s *StorageSource) Invalidate() {
	s.mu.Lock()
	s.built = time.Time{}
	s.mu.Unlock()
}

func (s *StorageSource) fresh(built time.Time) bool {
	return s.ttl > 0 && time.Since(built) <= s.ttl
}

func (s *StorageSource) fetch(ctx context.Context) (*Catalog, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("catalog: get %s/%s: %w", s.bucket, s.object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s/%s: %w", s.bucket, s.object, err)
	}

	c, err := ParseCatalogYAML(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s/%s: %w", s.bucket, s.object, err)
	}
	return c, nil
}

// PublishCatalog uploads c as a YAML document so a storage source can read
// it. The bucket is created when missing.
func PublishCatalog(ctx context.Context, client storage.Client, bucket, region, object string, c *Catalog) (minio.UploadInfo, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("catalog: encode: %w", err)
	}
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return minio.UploadInfo{}, err
	}

	info, err := client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/yaml"})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("catalog: put %s/%s: %w", bucket, object, err)
	}
	return info, nil
}

package classifier

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cachedClassifier struct {
	inner Classifier
	cache *lru.Cache[string, int]
}

// NewCachedClassifier memoizes inner by (name, description). Safe for concurrent use.
func NewCachedClassifier(inner Classifier, size int) (*cachedClassifier, error) {
	cache, err := lru.New[string, int](size)
	if err != nil {
		return nil, fmt.Errorf("classifier.NewCachedClassifier: %w", err)
	}

	return &cachedClassifier{inner: inner, cache: cache}, nil
}

func (c *cachedClassifier) WearScore(name, description string) int {
	key := name + "\x00" + description
	if v, ok := c.cache.Get(key); ok {
		return v
	}

	v := c.inner.WearScore(name, description)
	c.cache.Add(key, v)
	return v
}

func (c *cachedClassifier) Len() int { return c.cache.Len() }

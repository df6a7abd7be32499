package silo

import (
	"errors"
	"testing"
)

type prototypePayload struct {
	X, Y float64
}

// TestCacheBasicOperations tests the basic operations of PrototypeCache.
func TestCacheBasicOperations(t *testing.T) {
	const capacity = 10
	cache := FactoryNewPrototypeCache[string](capacity)

	items := []string{"item1", "item2", "item3", "item4", "item5"}
	indices := make([]int, len(items))

	for i, item := range items {
		index, err := cache.Register(item, item)
		if err != nil {
			t.Errorf("failed to register item %s: %v", item, err)
		}
		indices[i] = index

		if index != i {
			t.Errorf("index for item %s is %d, expected %d", item, index, i)
		}
	}

	for i, item := range items {
		index, found := cache.GetIndex(item)
		if !found {
			t.Errorf("item %s not found in cache", item)
		}
		if index != indices[i] {
			t.Errorf("index for item %s is %d, expected %d", item, index, indices[i])
		}
	}

	for i, item := range items {
		cachedItem := *cache.GetItem(indices[i])
		if cachedItem != item {
			t.Errorf("item at index %d is %s, expected %s", indices[i], cachedItem, item)
		}
	}

	for i, item := range items {
		cachedItem := *cache.GetItem32(uint32(indices[i]))
		if cachedItem != item {
			t.Errorf("item at index %d is %s, expected %s", indices[i], cachedItem, item)
		}
	}

	_, found := cache.GetIndex("nonexistent")
	if found {
		t.Errorf("found non-existent item in cache")
	}
}

// TestCacheCapacity tests the cache capacity limit.
func TestCacheCapacity(t *testing.T) {
	const capacity = 5
	cache := FactoryNewPrototypeCache[int](capacity)

	for i := 0; i < capacity; i++ {
		key := "item" + string(rune(i+'0'))
		if _, err := cache.Register(key, i); err != nil {
			t.Errorf("failed to register item %s: %v", key, err)
		}
	}

	_, err := cache.Register("overflow", 100)
	if err == nil {
		t.Fatalf("expected error when exceeding cache capacity, got none")
	}
	var full StorageFullError
	if !errors.As(err, &full) {
		t.Errorf("expected StorageFullError, got %T", err)
	}
}

// TestCacheClear tests that Clear empties the cache without changing its
// capacity.
func TestCacheClear(t *testing.T) {
	cache := FactoryNewPrototypeCache[string](10)

	items := []string{"item1", "item2", "item3"}
	for _, item := range items {
		if _, err := cache.Register(item, item); err != nil {
			t.Errorf("failed to register item %s: %v", item, err)
		}
	}

	cache.Clear()

	for _, item := range items {
		if _, found := cache.GetIndex(item); found {
			t.Errorf("item %s still found after cache clear", item)
		}
	}

	for _, item := range items {
		if _, err := cache.Register(item, item); err != nil {
			t.Errorf("failed to register item %s after clear: %v", item, err)
		}
	}
}

// TestCacheWithComplexTypes tests the cache with a struct payload.
func TestCacheWithComplexTypes(t *testing.T) {
	cache := FactoryNewPrototypeCache[prototypePayload](10)

	payloads := []prototypePayload{
		{X: 1.0, Y: 2.0},
		{X: 3.0, Y: 4.0},
		{X: 5.0, Y: 6.0},
	}
	keys := []string{"proto1", "proto2", "proto3"}

	for i, p := range payloads {
		if _, err := cache.Register(keys[i], p); err != nil {
			t.Errorf("failed to register payload %v: %v", p, err)
		}
	}

	for i, key := range keys {
		index, found := cache.GetIndex(key)
		if !found {
			t.Errorf("payload with key %s not found", key)
			continue
		}

		p := cache.GetItem(index)
		if p.X != payloads[i].X || p.Y != payloads[i].Y {
			t.Errorf("payload at index %d is %v, expected %v", index, p, payloads[i])
		}
	}
}

// TestCacheConcurrentReads exercises concurrent GetItem calls against a
// cache that isn't being mutated, which PrototypeCache's slice-backed
// storage allows without synchronization.
func TestCacheConcurrentReads(t *testing.T) {
	cache := FactoryNewPrototypeCache[int](100)

	index, err := cache.Register("item", 42)
	if err != nil {
		t.Fatalf("failed to register initial item: %v", err)
	}

	done := make(chan struct{})
	errs := make(chan error, 1)

	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			if item := *cache.GetItem(index); item != 42 {
				errs <- errors.New("unexpected value read from cache")
				return
			}
		}
	}()

	<-done
	select {
	case err := <-errs:
		t.Errorf("concurrent read failed: %v", err)
	default:
	}
}

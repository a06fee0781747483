package renderer

import (
	"testing"
)

func newCountingCache(locs map[string]int32) (*UniformCache, *int) {
	calls := 0
	cache := NewUniformCache(7)
	cache.lookup = func(program uint32, name string) int32 {
		calls++
		if program != 7 {
			return -1
		}
		if loc, ok := locs[name]; ok {
			return loc
		}
		return -1
	}
	return cache, &calls
}

func TestNewUniformCache(t *testing.T) {
	cache := NewUniformCache(0)

	if cache == nil {
		t.Fatal("NewUniformCache returned nil")
	}

	if cache.locations == nil {
		t.Error("locations map should be initialized")
	}
}

func TestUniformCacheLooksUpOnce(t *testing.T) {
	cache, calls := newCountingCache(map[string]int32{"model": 3})

	for i := 0; i < 5; i++ {
		if loc := cache.GetLocation("model"); loc != 3 {
			t.Fatalf("Expected location 3, got %d", loc)
		}
	}

	if *calls != 1 {
		t.Errorf("Expected a single lookup, got %d", *calls)
	}
}

func TestUniformCacheRemembersMissingUniforms(t *testing.T) {
	cache, calls := newCountingCache(nil)

	cache.GetLocation("pointLight.position")
	cache.GetLocation("pointLight.position")

	if loc := cache.GetLocation("pointLight.position"); loc != -1 {
		t.Errorf("Missing uniform should be -1, got %d", loc)
	}
	if *calls != 1 {
		t.Errorf("Missing uniform should be looked up once, got %d", *calls)
	}
}

func TestUniformCacheClear(t *testing.T) {
	cache, calls := newCountingCache(map[string]int32{"view": 1})
	cache.GetLocation("view")

	cache.Clear()

	if len(cache.locations) != 0 {
		t.Error("Clear should empty the cache")
	}

	cache.GetLocation("view")
	if *calls != 2 {
		t.Errorf("Lookup after Clear should hit GL again, got %d calls", *calls)
	}
}

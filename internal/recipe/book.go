package recipe

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/MixCalc_Go/internal/domain"
	"github.com/osse101/MixCalc_Go/internal/metrics"
)

// Recipe is a saved mix
type Recipe struct {
	Key     string          `json:"key"`
	Mix     domain.Sellable `json:"mix"`
	SavedAt time.Time       `json:"saved_at"`
}

// Book is an in-memory set of saved mixes keyed by Sellable.Key.
// It is safe for concurrent use.
type Book struct {
	mu      sync.RWMutex
	recipes map[string]Recipe
	now     func() time.Time
}

// NewBook creates an empty recipe book
func NewBook() *Book {
	return &Book{
		recipes: make(map[string]Recipe),
		now:     time.Now,
	}
}

// Save stores mix under its key, replacing any recipe already saved there.
// Unmixed products cannot be saved.
func (b *Book) Save(mix domain.Sellable) error {
	if !mix.IsMixed() {
		return fmt.Errorf("%w: %s", domain.ErrNothingToSave, mix.Base)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.saveLocked(mix)
	metrics.RecipeOperations.WithLabelValues(OperationSave).Inc()
	return nil
}

// Remove deletes the recipe saved under key
func (b *Book) Remove(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.recipes[key]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrRecipeNotFound, key)
	}

	b.removeLocked(key)
	metrics.RecipeOperations.WithLabelValues(OperationRemove).Inc()
	return nil
}

// Toggle saves mix when it is not saved yet and removes it otherwise.
// It reports whether the mix is saved afterwards.
func (b *Book) Toggle(mix domain.Sellable) (bool, error) {
	if !mix.IsMixed() {
		return false, fmt.Errorf("%w: %s", domain.ErrNothingToSave, mix.Base)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	metrics.RecipeOperations.WithLabelValues(OperationToggle).Inc()

	key := mix.Key()
	if _, ok := b.recipes[key]; ok {
		b.removeLocked(key)
		return false, nil
	}

	b.saveLocked(mix)
	return true, nil
}

// Get returns the recipe saved under key
func (b *Book) Get(key string) (Recipe, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r, ok := b.recipes[key]
	if !ok {
		return Recipe{}, false
	}
	r.Mix = r.Mix.Clone()
	return r, true
}

// Contains reports whether a recipe is saved under key
func (b *Book) Contains(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.recipes[key]
	return ok
}

// List returns every saved recipe ordered by mix name, then key
func (b *Book) List() []Recipe {
	b.mu.RLock()
	list := make([]Recipe, 0, len(b.recipes))
	for _, r := range b.recipes {
		r.Mix = r.Mix.Clone()
		list = append(list, r)
	}
	b.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Mix.Name != list[j].Mix.Name {
			return list[i].Mix.Name < list[j].Mix.Name
		}
		return list[i].Key < list[j].Key
	})
	return list
}

// Len returns the number of saved recipes
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.recipes)
}

// saveLocked stores mix (caller must hold the write lock)
func (b *Book) saveLocked(mix domain.Sellable) {
	key := mix.Key()
	b.recipes[key] = Recipe{
		Key:     key,
		Mix:     mix.Clone(),
		SavedAt: b.now(),
	}
	metrics.SavedRecipes.Set(float64(len(b.recipes)))
}

// removeLocked deletes key (caller must hold the write lock)
func (b *Book) removeLocked(key string) {
	delete(b.recipes, key)
	metrics.SavedRecipes.Set(float64(len(b.recipes)))
}

package naming

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"

	"github.com/osse101/MixCalc_Go/internal/domain"
	"github.com/osse101/MixCalc_Go/internal/metrics"
	"github.com/osse101/MixCalc_Go/internal/validation"
)

//go:embed schemas/aliases.schema.json
var aliasesSchema []byte

var schemas = sync.OnceValues(func() (validation.SchemaValidator, error) {
	v := validation.NewSchemaValidator()
	if err := v.AddSchema(AliasesSchemaName, aliasesSchema); err != nil {
		return nil, err
	}
	return v, nil
})

// Suggestion is a catalog name close to an input that did not resolve
type Suggestion struct {
	Kind     Kind   `json:"kind"`
	Name     string `json:"name"`
	Distance int    `json:"distance"`
}

// Resolver turns user-facing names into catalog values
type Resolver interface {
	// ResolveProduct accepts a product tag ("Marijuana(Calming)", "Meth") or a strain name ("OG Kush")
	ResolveProduct(name string) (domain.Product, error)

	// ResolveIngredient accepts an ingredient tag or display name ("HorseSemen", "horse semen")
	ResolveIngredient(name string) (domain.Ingredient, error)

	// ResolveEffect accepts an effect tag
	ResolveEffect(name string) (domain.Effect, error)

	// ResolveQuality accepts a quality name or the matching soil name
	ResolveQuality(name string) (domain.Quality, error)

	// ResolveAdditive accepts an additive name
	ResolveAdditive(name string) (domain.Additive, error)

	// Suggest returns the closest catalog names of the given kind, best first
	Suggest(kind Kind, name string) []Suggestion

	// Reload re-reads the alias configuration
	Reload() error
}

type resolver struct {
	mu sync.RWMutex

	// Rebuilt wholesale on Reload and never mutated afterwards
	names *catalogNames

	aliasesPath string
}

// NewResolver creates a resolver over the built-in catalogs plus the aliases in
// aliasesPath. A missing alias file is not an error.
func NewResolver(aliasesPath string) (Resolver, error) {
	r := &resolver{aliasesPath: aliasesPath}

	if err := r.Reload(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *resolver) ResolveProduct(name string) (domain.Product, error) {
	return resolveIn(r.snapshot().products, name, domain.ErrUnknownProduct)
}

func (r *resolver) ResolveIngredient(name string) (domain.Ingredient, error) {
	return resolveIn(r.snapshot().ingredients, name, domain.ErrUnknownIngredient)
}

func (r *resolver) ResolveEffect(name string) (domain.Effect, error) {
	return resolveIn(r.snapshot().effects, name, domain.ErrUnknownEffect)
}

func (r *resolver) ResolveQuality(name string) (domain.Quality, error) {
	return resolveIn(r.snapshot().qualities, name, domain.ErrUnknownQuality)
}

func (r *resolver) ResolveAdditive(name string) (domain.Additive, error) {
	return resolveIn(r.snapshot().additives, name, domain.ErrUnknownAdditive)
}

func (r *resolver) Suggest(kind Kind, name string) []Suggestion {
	names := r.snapshot()
	key := lookupKey(name)

	switch kind {
	case KindProduct:
		return names.products.suggest(key)
	case KindIngredient:
		return names.ingredients.suggest(key)
	case KindEffect:
		return names.effects.suggest(key)
	case KindQuality:
		return names.qualities.suggest(key)
	case KindAdditive:
		return names.additives.suggest(key)
	default:
		return nil
	}
}

// Reload rebuilds every index from the catalogs and the alias file. On error the
// previous names stay in place.
func (r *resolver) Reload() error {
	names := newCatalogNames()

	if r.aliasesPath != "" {
		if err := loadAliases(r.aliasesPath, names); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToLoadAliases, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = names

	return nil
}

func (r *resolver) snapshot() *catalogNames {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names
}

// loadAliases reads a versioned alias file of the form
//
//	{"version": "1.0", "schema": "mix-aliases", "aliases": {"<alias>": "<tag>"}}
//
// The document must also satisfy the embedded alias schema. Each alias is
// registered under every catalog whose tags include the target.
func loadAliases(path string, names *catalogNames) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(ErrContextFailedToReadConfig+": %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return fmt.Errorf(ErrMsgInvalidJSON, path)
	}
	doc := gjson.ParseBytes(data)

	if doc.Get(JSONKeyVersion).String() == "" {
		return fmt.Errorf(ErrMsgMissingVersionField, path)
	}
	if schema := doc.Get(JSONKeySchema).String(); schema != SchemaMixAliases {
		return fmt.Errorf(ErrMsgInvalidSchema, path, SchemaMixAliases, schema)
	}

	v, err := schemas()
	if err != nil {
		return err
	}
	if err := v.ValidateBytes(data, AliasesSchemaName); err != nil {
		return fmt.Errorf(ErrMsgSchemaViolation, path, err)
	}

	var aliasErr error
	doc.Get(JSONKeyAliases).ForEach(func(alias, target gjson.Result) bool {
		if !names.alias(alias.String(), target.String()) {
			aliasErr = fmt.Errorf(ErrMsgAliasUnknownTarget, alias.String(), path, target.String())
			return false
		}
		return true
	})

	return aliasErr
}

// catalogNames holds one index per catalog
type catalogNames struct {
	products    *nameIndex[domain.Product]
	ingredients *nameIndex[domain.Ingredient]
	effects     *nameIndex[domain.Effect]
	qualities   *nameIndex[domain.Quality]
	additives   *nameIndex[domain.Additive]
}

func newCatalogNames() *catalogNames {
	names := &catalogNames{
		products:    newNameIndex(KindProduct, domain.Product.String),
		ingredients: newNameIndex(KindIngredient, domain.Ingredient.String),
		effects:     newNameIndex(KindEffect, domain.Effect.String),
		qualities:   newNameIndex(KindQuality, domain.Quality.String),
		additives:   newNameIndex(KindAdditive, domain.Additive.String),
	}

	for _, p := range domain.AllProducts() {
		names.products.register(p.String(), p)
		names.products.register(p.DefaultName(), p)
	}
	for _, i := range domain.AllIngredients() {
		names.ingredients.register(i.String(), i)
		names.ingredients.register(i.DisplayName(), i)
	}
	for _, e := range domain.AllEffects() {
		names.effects.register(e.String(), e)
	}
	for _, q := range domain.AllQualities() {
		names.qualities.register(q.String(), q)
		names.qualities.register(q.SoilName(), q)
	}
	for _, a := range domain.AllAdditives() {
		names.additives.register(a.String(), a)
	}

	return names
}

// alias registers name for every catalog value whose tag is target
func (c *catalogNames) alias(name, target string) bool {
	matched := false

	if p, err := domain.ParseProduct(target); err == nil {
		c.products.alias(name, p)
		matched = true
	}
	if i, err := domain.ParseIngredient(target); err == nil {
		c.ingredients.alias(name, i)
		matched = true
	}
	if e, err := domain.ParseEffect(target); err == nil {
		c.effects.alias(name, e)
		matched = true
	}
	if q, err := domain.ParseQuality(target); err == nil {
		c.qualities.alias(name, q)
		matched = true
	}
	if a, err := domain.ParseAdditive(target); err == nil {
		c.additives.alias(name, a)
		matched = true
	}

	return matched
}

// nameIndex maps lookup keys to the values of one catalog. Built-in names win
// over aliases sharing the same key.
type nameIndex[T comparable] struct {
	kind    Kind
	tag     func(T) string
	exact   map[string]T
	aliases map[string]T
}

func newNameIndex[T comparable](kind Kind, tag func(T) string) *nameIndex[T] {
	return &nameIndex[T]{
		kind:    kind,
		tag:     tag,
		exact:   make(map[string]T),
		aliases: make(map[string]T),
	}
}

func (ix *nameIndex[T]) register(name string, v T) {
	if key := lookupKey(name); key != "" {
		ix.exact[key] = v
	}
}

func (ix *nameIndex[T]) alias(name string, v T) {
	if key := lookupKey(name); key != "" {
		ix.aliases[key] = v
	}
}

func (ix *nameIndex[T]) lookup(key string) (T, string, bool) {
	if v, ok := ix.exact[key]; ok {
		return v, ResultExact, true
	}
	if v, ok := ix.aliases[key]; ok {
		return v, ResultAlias, true
	}
	var zero T
	return zero, ResultMiss, false
}

// suggest ranks catalog values by the edit distance between key and their
// closest registered name
func (ix *nameIndex[T]) suggest(key string) []Suggestion {
	if key == "" {
		return nil
	}

	best := make(map[T]int)
	consider := func(candidate string, v T) {
		dist := levenshtein.ComputeDistance(key, candidate)
		if dist > levenshteinLimit(utf8.RuneCountInString(candidate)) {
			return
		}
		if prev, ok := best[v]; !ok || dist < prev {
			best[v] = dist
		}
	}
	for candidate, v := range ix.exact {
		consider(candidate, v)
	}
	for candidate, v := range ix.aliases {
		consider(candidate, v)
	}

	suggestions := make([]Suggestion, 0, len(best))
	for v, dist := range best {
		suggestions = append(suggestions, Suggestion{Kind: ix.kind, Name: ix.tag(v), Distance: dist})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Name < suggestions[j].Name
	})

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

func resolveIn[T comparable](ix *nameIndex[T], name string, notFound error) (T, error) {
	key := lookupKey(name)

	v, result, ok := ix.lookup(key)
	metrics.NameResolutions.WithLabelValues(string(ix.kind), result).Inc()
	if ok {
		return v, nil
	}

	if suggestions := ix.suggest(key); len(suggestions) > 0 {
		return v, fmt.Errorf(ErrFmtUnresolvedHint, notFound, name, suggestions[0].Name)
	}
	return v, fmt.Errorf(ErrFmtUnresolved, notFound, name)
}

// lookupKey case-folds name and drops separators
func lookupKey(name string) string {
	// Casers carry state and are not safe for concurrent use
	folded := cases.Fold().String(strings.TrimSpace(name))

	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(keySeparators, r) {
			return -1
		}
		return r
	}, folded)
}

func levenshteinLimit(length int) int {
	switch {
	case length <= shortKeyLength:
		return shortKeyLimit
	case length <= mediumKeyLength:
		return mediumKeyLimit
	default:
		return longKeyLimit
	}
}

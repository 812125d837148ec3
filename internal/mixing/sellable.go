package mixing

import "github.com/osse101/MixCalc_Go/internal/domain"

var defaultEngine = NewEngine()

// Step is one ingredient application in a mix history
type Step struct {
	Ingredient domain.Ingredient `json:"ingredient"`
	Reaction   Reaction          `json:"reaction"`
	// Applied is false when the ingredient changed nothing and was dropped
	Applied bool `json:"applied"`
}

// FromProduct starts an unmixed sellable from a base product
func FromProduct(p domain.Product) domain.Sellable {
	return domain.Sellable{
		Base:    p,
		Name:    p.DefaultName(),
		Effects: p.StartingEffects(),
	}
}

// Rename returns a copy of mix with a new name
func Rename(mix domain.Sellable, name string) domain.Sellable {
	out := mix.Clone()
	out.Name = name
	return out
}

// AddIngredient mixes ing into mix using the standard rule table
func AddIngredient(mix domain.Sellable, ing domain.Ingredient) domain.Sellable {
	return defaultEngine.AddIngredient(mix, ing)
}

// Build starts from p and adds each ingredient in order using the standard rule table
func Build(p domain.Product, ingredients ...domain.Ingredient) domain.Sellable {
	return defaultEngine.Build(p, ingredients...)
}

// AddIngredient mixes ing into mix. When the ingredient leaves the effects
// unchanged the input is returned as is: the ingredient is neither recorded nor
// charged and the name stays the same. Otherwise a new sellable is returned with
// the ingredient appended and its tag added to the name.
func (e *Engine) AddIngredient(mix domain.Sellable, ing domain.Ingredient) domain.Sellable {
	out, _ := e.apply(mix, ing)
	return out
}

func (e *Engine) apply(mix domain.Sellable, ing domain.Ingredient) (domain.Sellable, Step) {
	reaction := e.Trace(mix.Effects, ing.Effect())
	step := Step{Ingredient: ing, Reaction: reaction, Applied: reaction.Changed()}
	if !step.Applied {
		return mix, step
	}

	ingredients := make([]domain.Ingredient, len(mix.Ingredients), len(mix.Ingredients)+1)
	copy(ingredients, mix.Ingredients)

	return domain.Sellable{
		Base:        mix.Base,
		Name:        mix.Name + nameSeparator + ing.String(),
		Effects:     reaction.After,
		Ingredients: append(ingredients, ing),
	}, step
}

// Build starts from p and adds each ingredient in order
func (e *Engine) Build(p domain.Product, ingredients ...domain.Ingredient) domain.Sellable {
	mix, _ := e.BuildWithSteps(p, ingredients...)
	return mix
}

// BuildWithSteps is Build that also returns one step per requested ingredient,
// including the ones that were dropped as no-ops
func (e *Engine) BuildWithSteps(p domain.Product, ingredients ...domain.Ingredient) (domain.Sellable, []Step) {
	mix := FromProduct(p)
	steps := make([]Step, 0, len(ingredients))
	for _, ing := range ingredients {
		var step Step
		mix, step = e.apply(mix, ing)
		steps = append(steps, step)
	}
	return mix, steps
}

// Replay re-derives the history of a mix from its base product and recorded
// ingredients. A sellable produced by AddIngredient replays with every step applied.
func (e *Engine) Replay(mix domain.Sellable) []Step {
	_, steps := e.BuildWithSteps(mix.Base, mix.Ingredients...)
	return steps
}

package domain

// Effect capacity
const (
	// MaxEffects is the most effects a single mix can carry
	MaxEffects = 8
)

// Product family names
const (
	FamilyNameMarijuana = "Marijuana"
	FamilyNameMeth      = "Meth"
	FamilyNameCocaine   = "Cocaine"
)

// Strain names - default display names of the plant products
const (
	StrainOGKush           = "OG Kush"
	StrainSourDiesel       = "Sour Diesel"
	StrainGreenCrack       = "Green Crack"
	StrainGranddaddyPurple = "Granddaddy Purple"
)

// Soil display names by quality tier
const (
	SoilNameLow    = "Soil"
	SoilNameMedium = "Long-Life Soil"
	SoilNameHigh   = "Extra Long-Life Soil"
)

// Growing additive names
const (
	AdditiveNamePGR        = "PGR"
	AdditiveNameFertilizer = "Fertilizer"
	AdditiveNameSpeedGrow  = "SpeedGrow"
)

// Quality names
const (
	QualityNameLow    = "Low"
	QualityNameMedium = "Medium"
	QualityNameHigh   = "High"
)

// Fixed costs
const (
	// AdditiveCost is the one-time cost of any growing additive
	AdditiveCost = 30
)

package tables

// VariationBucket maps a d100 range to the day's temperature swing. Delta is
// the swing on an ordinary day; EventDelta is the compressed swing applied
// while a cold front or heat wave is running, so a single daily roll feeds
// both paths.
type VariationBucket struct {
	Low        int
	High       int
	Label      string
	Delta      int
	EventDelta int
}

// Variation resolves the day's roll to its bucket. The table is total over
// [1,100]; out-of-range rolls clamp to the outer buckets.
func (s *Set) Variation(roll int) VariationBucket {
	roll = clampRoll(roll)
	for _, bucket := range s.variations {
		if roll >= bucket.Low && roll <= bucket.High {
			return bucket
		}
	}
	return s.variations[len(s.variations)-1]
}

func defaultVariations() []VariationBucket {
	return []VariationBucket{
		{1, 5, "far colder than usual", -8, -5},
		{6, 15, "much colder than usual", -5, -4},
		{16, 35, "colder than usual", -2, -2},
		{36, 65, "seasonal", 0, 0},
		{66, 85, "warmer than usual", 2, 2},
		{86, 95, "much warmer than usual", 5, 4},
		{96, 100, "far warmer than usual", 8, 5},
	}
}

// TemperatureCategory is the displayed band for a day's final temperature.
type TemperatureCategory string

const (
	CategoryBitterCold TemperatureCategory = "bitter_cold"
	CategoryFreezing   TemperatureCategory = "freezing"
	CategoryCold       TemperatureCategory = "cold"
	CategoryMild       TemperatureCategory = "mild"
	CategoryWarm       TemperatureCategory = "warm"
	CategoryHot        TemperatureCategory = "hot"
	CategoryScorching  TemperatureCategory = "scorching"
)

// CategoryFor bands the final, post-modifier temperature. Callers must pass
// the actual temperature, not the seasonal base, so active events shift the
// displayed band.
func CategoryFor(tempC int) TemperatureCategory {
	switch {
	case tempC <= -10:
		return CategoryBitterCold
	case tempC <= 0:
		return CategoryFreezing
	case tempC <= 7:
		return CategoryCold
	case tempC <= 15:
		return CategoryMild
	case tempC <= 23:
		return CategoryWarm
	case tempC <= 31:
		return CategoryHot
	default:
		return CategoryScorching
	}
}

func CategoryLabel(category TemperatureCategory) string {
	switch category {
	case CategoryBitterCold:
		return "Bitter cold"
	case CategoryFreezing:
		return "Freezing"
	case CategoryCold:
		return "Cold"
	case CategoryMild:
		return "Mild"
	case CategoryWarm:
		return "Warm"
	case CategoryHot:
		return "Hot"
	case CategoryScorching:
		return "Scorching"
	default:
		return "Unknown"
	}
}

package tables

// WeatherKey names a resolved daily weather type.
type WeatherKey string

const (
	WeatherClear        WeatherKey = "clear"
	WeatherOvercast     WeatherKey = "overcast"
	WeatherMist         WeatherKey = "mist"
	WeatherDrizzle      WeatherKey = "drizzle"
	WeatherRain         WeatherKey = "rain"
	WeatherDownpour     WeatherKey = "downpour"
	WeatherThunderstorm WeatherKey = "thunderstorm"
	WeatherSleet        WeatherKey = "sleet"
	WeatherSnow         WeatherKey = "snow"
	WeatherHail         WeatherKey = "hail"
)

func WeatherLabel(key WeatherKey) string {
	switch key {
	case WeatherClear:
		return "Clear skies"
	case WeatherOvercast:
		return "Overcast"
	case WeatherMist:
		return "Mist"
	case WeatherDrizzle:
		return "Drizzle"
	case WeatherRain:
		return "Rain"
	case WeatherDownpour:
		return "Downpour"
	case WeatherThunderstorm:
		return "Thunderstorm"
	case WeatherSleet:
		return "Sleet"
	case WeatherSnow:
		return "Snow"
	case WeatherHail:
		return "Hail"
	default:
		return "Unknown"
	}
}

type weatherRange struct {
	Low  int
	High int
	Key  WeatherKey
}

// WeatherType resolves a d100 roll against the season's range table. Rolls
// outside [1,100] clamp to the nearest edge so malformed input still resolves
// deterministically.
func (s *Set) WeatherType(season Season, roll int) (WeatherKey, error) {
	ranges, ok := s.weather[season]
	if !ok {
		return "", &ConfigurationError{Table: "weather type", Key: string(season)}
	}
	roll = clampRoll(roll)
	for _, r := range ranges {
		if roll >= r.Low && roll <= r.High {
			return r.Key, nil
		}
	}
	// Unreachable for a validated set; clamped rolls always land in a range.
	return ranges[len(ranges)-1].Key, nil
}

func clampRoll(roll int) int {
	if roll < 1 {
		return 1
	}
	if roll > 100 {
		return 100
	}
	return roll
}

func defaultWeatherRanges() map[Season][]weatherRange {
	return map[Season][]weatherRange{
		SeasonSpring: {
			{1, 20, WeatherClear},
			{21, 40, WeatherOvercast},
			{41, 55, WeatherMist},
			{56, 75, WeatherDrizzle},
			{76, 90, WeatherRain},
			{91, 97, WeatherDownpour},
			{98, 100, WeatherThunderstorm},
		},
		SeasonSummer: {
			{1, 45, WeatherClear},
			{46, 65, WeatherOvercast},
			{66, 75, WeatherDrizzle},
			{76, 85, WeatherRain},
			{86, 95, WeatherThunderstorm},
			{96, 100, WeatherDownpour},
		},
		SeasonAutumn: {
			{1, 15, WeatherClear},
			{16, 40, WeatherOvercast},
			{41, 55, WeatherMist},
			{56, 70, WeatherDrizzle},
			{71, 88, WeatherRain},
			{89, 95, WeatherDownpour},
			{96, 100, WeatherSleet},
		},
		SeasonWinter: {
			{1, 15, WeatherClear},
			{16, 40, WeatherOvercast},
			{41, 52, WeatherMist},
			{53, 65, WeatherSleet},
			{66, 90, WeatherSnow},
			{91, 100, WeatherHail},
		},
	}
}

package summary

import "golang.org/x/text/language"

// Locale selects the language of a rendered summary.
type Locale int

const (
	Russian Locale = iota
	English
)

// DefaultLocale is used when no supported language matches.
const DefaultLocale = Russian

// Order matches the Locale constants; the first entry is the matcher fallback.
var supported = []language.Tag{
	language.Russian,
	language.English,
}

var matcher = language.NewMatcher(supported)

var layouts = [...]string{
	Russian: "Тип тренировки: %s; Длительность: %s ч.; Дистанция: %s км; Ср. скорость: %s км/ч; Потрачено ккал: %s.",
	English: "Training type: %s; Duration: %s h; Distance: %s km; Mean speed: %s km/h; Calories burned: %s.",
}

// ParseLocale picks the best supported locale for a list of BCP 47 tags or
// Accept-Language style strings. Unknown or empty input yields DefaultLocale.
func ParseLocale(prefs ...string) Locale {
	_, index := language.MatchStrings(matcher, prefs...)
	if index < 0 || index >= len(layouts) {
		return DefaultLocale
	}
	return Locale(index)
}

// Tag returns the language tag of l.
func (l Locale) Tag() language.Tag {
	if l < 0 || int(l) >= len(supported) {
		return supported[DefaultLocale]
	}
	return supported[l]
}

func (l Locale) String() string {
	return l.Tag().String()
}

func (l Locale) layout() string {
	if l < 0 || int(l) >= len(layouts) {
		return layouts[DefaultLocale]
	}
	return layouts[l]
}

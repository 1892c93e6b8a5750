package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// valueEnums maps tags whose values are enumerations to the names of those
// values. It is populated once at init and only read afterward.
var valueEnums = map[GameTag]map[int]string{
	TagZone:          zoneNames,
	TagCardType:      cardTypeNames,
	TagRarity:        rarityNames,
	TagFaction:       factionNames,
	TagStep:          stepNames,
	TagNextStep:      stepNames,
	TagPlayState:     playStateNames,
	TagMulliganState: mulliganNames,
	TagState:         stateNames,
	TagClass:         classNames,
	TagCardRace:      raceNames,
}

var valuesByName map[GameTag]map[string]int

func init() {
	valuesByName = make(map[GameTag]map[string]int, len(valueEnums))
	for tag, names := range valueEnums {
		reverse := make(map[string]int, len(names))
		for v, name := range names {
			reverse[name] = v
		}
		valuesByName[tag] = reverse
	}
}

// HasValueNames reports whether the values of tag render symbolically.
func HasValueNames(tag GameTag) bool {
	_, ok := valueEnums[tag]
	return ok
}

// ValueName returns the symbolic name of value for tag, if one is known.
func ValueName(tag GameTag, value int) (string, bool) {
	names, ok := valueEnums[tag]
	if !ok {
		return "", false
	}
	name, ok := names[value]
	return name, ok
}

// FormatValue renders value symbolically when possible and as a plain integer
// otherwise.
func FormatValue(tag GameTag, value int) string {
	if name, ok := ValueName(tag, value); ok {
		return name
	}
	return strconv.Itoa(value)
}

// ParseValue is the inverse of FormatValue. It also accepts integers and the
// booleans true/false.
func ParseValue(tag GameTag, text string) (int, error) {
	text = strings.TrimSpace(text)
	if v, err := strconv.Atoi(text); err == nil {
		return v, nil
	}
	switch strings.ToLower(text) {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}
	if v, ok := valuesByName[tag][strings.ToUpper(text)]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("invalid value %q for tag %s", text, tag)
}

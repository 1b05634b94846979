package flags

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue               = "true"
	toggleFalseCanonicalValue              = "false"
	toggleParseErrorTemplate               = "invalid toggle value %q"
	toggleArgumentTruePlaceholderConstant  = "<YES|no>"
	toggleArgumentFalsePlaceholderConstant = "<yes|NO>"
	toggleUsageTemplate                    = "`%s` %s"
	longFlagPrefixConstant                 = "--"
	flagValueSeparatorConstant             = "="
)

var (
	trueLiteralSet = map[string]struct{}{
		toggleTrueCanonicalValue: {}, "yes": {}, "on": {}, "1": {}, "t": {}, "y": {},
	}
	falseLiteralSet = map[string]struct{}{
		toggleFalseCanonicalValue: {}, "no": {}, "off": {}, "0": {}, "f": {}, "n": {},
	}

	toggleFlagRegistryMutex sync.RWMutex
	toggleFlagNames         = map[string]struct{}{}
)

// AddToggleFlag registers a boolean flag that accepts yes/no style values, such as --auto-apply no.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	flagSet.Var(newToggleFlagValue(defaultValue, target), name, usage)

	flag := flagSet.Lookup(name)
	if flag == nil {
		return
	}
	flag.NoOptDefVal = toggleTrueCanonicalValue
	flag.Usage = formatToggleUsage(usage, defaultValue)

	toggleFlagRegistryMutex.Lock()
	toggleFlagNames[name] = struct{}{}
	toggleFlagRegistryMutex.Unlock()
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleArgumentFalsePlaceholderConstant
	if defaultValue {
		placeholder = toggleArgumentTruePlaceholderConstant
	}
	return strings.TrimSpace(fmt.Sprintf(toggleUsageTemplate, placeholder, strings.TrimSpace(description)))
}

// NormalizeToggleArguments rewrites "--flag value" into "--flag=value" for registered toggles.
// pflag would otherwise treat the value as a positional argument because of NoOptDefVal.
func NormalizeToggleArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		current := arguments[index]
		if current == longFlagPrefixConstant {
			normalized = append(normalized, arguments[index:]...)
			break
		}

		if isBareToggle(current) && index+1 < len(arguments) && !strings.HasPrefix(arguments[index+1], "-") {
			normalized = append(normalized, current+flagValueSeparatorConstant+arguments[index+1])
			index++
			continue
		}

		normalized = append(normalized, current)
	}

	return normalized
}

func isBareToggle(argument string) bool {
	if !strings.HasPrefix(argument, longFlagPrefixConstant) || strings.Contains(argument, flagValueSeparatorConstant) {
		return false
	}
	name := strings.TrimPrefix(argument, longFlagPrefixConstant)

	toggleFlagRegistryMutex.RLock()
	defer toggleFlagRegistryMutex.RUnlock()
	_, registered := toggleFlagNames[name]
	return registered
}

type toggleFlagValue struct {
	currentValue bool
	target       *bool
}

func newToggleFlagValue(defaultValue bool, target *bool) *toggleFlagValue {
	if target != nil {
		*target = defaultValue
	}
	return &toggleFlagValue{currentValue: defaultValue, target: target}
}

func (value *toggleFlagValue) Set(rawValue string) error {
	parsedValue, parseError := parseToggleValue(rawValue)
	if parseError != nil {
		return parseError
	}

	value.currentValue = parsedValue
	if value.target != nil {
		*value.target = parsedValue
	}
	return nil
}

func (value *toggleFlagValue) String() string {
	if value == nil || !value.currentValue {
		return toggleFalseCanonicalValue
	}
	return toggleTrueCanonicalValue
}

func (value *toggleFlagValue) Type() string {
	return "bool"
}

func parseToggleValue(rawValue string) (bool, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if len(normalizedValue) == 0 {
		return true, nil
	}
	if _, isTrue := trueLiteralSet[normalizedValue]; isTrue {
		return true, nil
	}
	if _, isFalse := falseLiteralSet[normalizedValue]; isFalse {
		return false, nil
	}
	return false, fmt.Errorf(toggleParseErrorTemplate, rawValue)
}

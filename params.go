package twitterbot

import "strings"

// ParamSpec declares one parameter a bot understands and the values it may
// take, in priority order.
type ParamSpec struct {
	Name   string
	Values []string
}

// ParamsSpec is an ordered list of parameter declarations. It is a slice
// rather than a map so extraction scans parameters in the order the bot
// declared them.
type ParamsSpec []ParamSpec

// ExtractParams scans text for each declared parameter's allowed values and
// returns the first value found per parameter, matched as a case-insensitive
// substring. Parameters with no matching value are absent from the result.
func ExtractParams(text string, spec ParamsSpec) map[string]string {
	params := make(map[string]string)
	lowered := strings.ToLower(text)
	for _, p := range spec {
		for _, v := range p.Values {
			if strings.Contains(lowered, strings.ToLower(v)) {
				params[p.Name] = v
				break
			}
		}
	}
	return params
}

// ValidateInput reports whether text contains any of the required trigger
// phrases, case-insensitively. An empty required list matches nothing.
func ValidateInput(text string, required []string) bool {
	lowered := strings.ToLower(text)
	for _, r := range required {
		if strings.Contains(lowered, strings.ToLower(r)) {
			return true
		}
	}
	return false
}

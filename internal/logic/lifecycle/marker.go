package lifecycle

import "golang.org/x/text/cases"

// hasSkipMarker reports whether labels carry restart=ignore.
func hasSkipMarker(labels map[string]string) bool {
	value, ok := labels[SkipLabelKey]
	if !ok {
		return false
	}

	// Casers keep state, so a fresh one is used per call.
	return cases.Fold().String(value) == SkipLabelValue
}

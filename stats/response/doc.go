// Package response measures the shape of a compressed or matched-filter
// magnitude response: peak, mainlobe extent, half-power width and the
// sidelobe ratios used to judge window choices.
package response

// Package utils provides small numeric helpers shared by the generators,
// the matcher and the reporters: rounding to fixed decimals, clipping,
// guarded division and percentages.
package utils

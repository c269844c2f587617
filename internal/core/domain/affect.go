package domain

// Reference ranges for normalization. Daylight covers 0-16.5h, feelslike
// covers -17.8C to 28.4C, precipitation covers 0-47.10mm.
const (
	daylightRangeHours = 16.5
	feelslikeOffsetC   = 17.8
	feelslikeRangeC    = 46.2
	precipRangeMM      = 47.10
)

// Weights for the valence average. Energy tracks daylight alone; the
// valence weighting is an arbitrary design choice, not derived from data.
const (
	daylightWeight  = 2.0
	feelslikeWeight = 3.0
	precipWeight    = 4.0
)

// MapAffect converts the three weather signals into recommendation
// parameters. Pure and deterministic: identical inputs always yield
// identical outputs. Values are not clamped and not rounded here;
// rounding happens only at the presentation boundary.
func MapAffect(feelslikeC, precipMM, daylightHours float64) AffectParameters {
	daylightNorm := daylightHours / daylightRangeHours
	feelslikeNorm := (feelslikeC + feelslikeOffsetC) / feelslikeRangeC
	precipNorm := precipMM / precipRangeMM

	valence := (daylightWeight*daylightNorm + feelslikeWeight*feelslikeNorm + precipWeight*precipNorm) /
		(daylightWeight + feelslikeWeight + precipWeight)

	return AffectParameters{
		Valence: valence,
		Energy:  daylightNorm,
	}
}

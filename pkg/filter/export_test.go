package filter

var (
	CutAt        = cutAt
	ExtendOne    = extendOne
	TrimFront    = trimFront
	TrimBack     = trimBack
	ApplyThreshN = applyThreshold
	ExtendN      = extendRegions
	TrimN        = trimEdges
)

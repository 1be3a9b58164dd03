package parser

// DensityProfile holds a 1-D density profile: position[i] corresponds to
// Densities[i]. No ordering of positions is assumed beyond array alignment.
type DensityProfile struct {
	Positions []float64
	Densities []float64
}

// Len returns the number of profile samples.
func (p *DensityProfile) Len() int { return len(p.Densities) }

// PVData holds three parallel columns of equal length: volume, solid-phase
// pressure and liquid-phase pressure.
type PVData struct {
	Volumes        []float64
	SolidPressure  []float64
	LiquidPressure []float64
}

// Len returns the number of (V, Ps, Pl) rows.
func (d *PVData) Len() int { return len(d.Volumes) }

package fourier

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ParsevalDeviation returns the percent difference between the energy of
// samples and the energy of the 1/NFFT-normalized spectrum s produced from
// them:
//
//	100 * |E_t - E_f| / (E_t + E_f),  E_t = sum x^2,  E_f = NFFT * sum |F_k|^2
//
// Zero padding adds no energy, so a correct transform yields ~0. Two empty
// inputs yield 0.
func ParsevalDeviation(samples []float64, s Spectrum) float64 {
	active := s.Active()
	timeEnergy := vecmath.DotProduct(samples, samples)
	freqEnergy := float64(s.NFFT()) * vecmath.DotProduct(active, active)
	return parsevalPercent(timeEnergy, freqEnergy)
}

func parsevalPercent(timeEnergy, freqEnergy float64) float64 {
	sum := timeEnergy + freqEnergy
	if sum == 0 {
		return 0
	}
	return 100 * math.Abs(timeEnergy-freqEnergy) / sum
}

package window

import (
	"fmt"
	"math"
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validate(t Type, cfg config) error {
	switch t {
	case TypeNone, TypeHann:
		return nil
	case TypeExponential, TypeGaussian:
	default:
		return fmt.Errorf("unknown window type %d", int(t))
	}
	if !(cfg.sampleRate > 0) || math.IsInf(cfg.sampleRate, 0) {
		return fmt.Errorf("%s window sample rate must be finite and > 0: %v", t, cfg.sampleRate)
	}
	if math.IsNaN(cfg.broadening) || math.IsInf(cfg.broadening, 0) || cfg.broadening < 0 {
		return fmt.Errorf("%s window broadening must be finite and >= 0: %v", t, cfg.broadening)
	}
	return nil
}

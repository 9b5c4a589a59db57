package window

import (
	"fmt"

	"github.com/cwbudde/algo-radar/dsp/core"
)

var (
	errEmptyCoeffs      = fmt.Errorf("window: coefficients must not be empty: %w", core.ErrInvalidParameter)
	errZeroCoherentGain = fmt.Errorf("window: coherent gain is zero: %w", core.ErrNumericalDegenerate)
	errMismatchedLength = fmt.Errorf("window: samples and coefficients must have same length: %w", core.ErrInvalidParameter)
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d: %w", size, core.ErrInvalidParameter)
	}
	return nil
}

func validateKaiser(size int, beta float64) error {
	if err := validateLength(size); err != nil {
		return err
	}
	if beta < 0 {
		return fmt.Errorf("window: kaiser beta must be >= 0: %f: %w", beta, core.ErrInvalidParameter)
	}
	return nil
}

package sponge

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig matches every *ConfigError via errors.Is.
	ErrConfig = errors.New("sponge: invalid configuration")

	// ErrLength matches every *LengthError via errors.Is.
	ErrLength = errors.New("sponge: invalid length")

	// ErrUseAfterFinalize is returned when data is written to a sponge which has already been finalized.
	ErrUseAfterFinalize = errors.New("sponge: write after finalize")
)

// ConfigError reports an invalid static parameter. It is only ever returned by constructors.
type ConfigError struct {
	Param string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sponge: invalid %s: %d", e.Param, e.Value)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// LengthError reports an input whose length a construction does not accept.
type LengthError struct {
	What      string
	Got, Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("sponge: invalid %s length: got %d, want %d", e.What, e.Got, e.Want)
}

// Is reports whether target is ErrLength.
func (e *LengthError) Is(target error) bool {
	return target == ErrLength
}

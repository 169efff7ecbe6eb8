package core

// ConfigurationError reports structurally invalid construction parameters.
// It is not recoverable; the caller must fix the parameters and reconstruct.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

package memhashmap

// ConfigurationError - Custom error to inform that a HashTable could not be created from the given configuration
type ConfigurationError struct {
	msg string
}

// Error - Used to notify that the configuration is invalid
func (E ConfigurationError) Error() string {
	if E.msg == "" {
		return "invalid hash table configuration"
	}
	return E.msg
}

// Is - Makes any ConfigurationError match any other through errors.Is regardless of message
func (E ConfigurationError) Is(target error) bool {
	_, ok := target.(ConfigurationError)
	return ok
}

// OutputError - Custom error to inform that writing to the output sink failed
type OutputError struct {
	err error
}

// Error - Used to notify that the output sink refused a write
func (E OutputError) Error() string {
	if E.err == nil {
		return "error while writing to output"
	}
	return "error while writing to output: " + E.err.Error()
}

// Unwrap - Returns the error from the output sink
func (E OutputError) Unwrap() error {
	return E.err
}

// Is - Makes any OutputError match any other through errors.Is regardless of the sink error
func (E OutputError) Is(target error) bool {
	_, ok := target.(OutputError)
	return ok
}

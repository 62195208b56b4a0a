package directory

import "fmt"

// NetworkError is the only error kind the directory reacts to. The transport
// returns it for any fetch failure: connectivity, bad status, or a payload
// that cannot be decoded.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// SPDX-License-Identifier: EPL-2.0

package ajm

import "errors"

var (
	// ErrNoEngine is returned when a session is created without an engine factory
	ErrNoEngine = errors.New("ajm: no decode engine")
	// ErrNoSplitter is returned when a session is created without a splitter
	ErrNoSplitter = errors.New("ajm: no frame splitter")
	// ErrEngineInit wraps engine allocation or open failures
	ErrEngineInit = errors.New("ajm: engine init failed")
	// ErrSplit wraps splitter failures
	ErrSplit = errors.New("ajm: frame split failed")
	// ErrSubmit wraps failures submitting a unit to the engine
	ErrSubmit = errors.New("ajm: submit failed")
	// ErrDecode wraps unrecoverable engine failures while draining
	ErrDecode = errors.New("ajm: decode failed")
	// ErrNormalize wraps sample format conversion failures
	ErrNormalize = errors.New("ajm: sample conversion failed")
	// ErrSessionFailed is returned by every call after a fatal error until Reset
	ErrSessionFailed = errors.New("ajm: session failed, reset required")
	// ErrClosed is returned when a closed session is used
	ErrClosed = errors.New("ajm: session closed")
)

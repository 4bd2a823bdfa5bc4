package domain

import "errors"

// The three errors below form the modeled failure taxonomy. A gateway
// raises one of them when its backend answers with a non-success response;
// the message is passed through from the backend. Anything else that goes
// wrong (transport failures, programming errors, undecodable payloads) is
// deliberately NOT part of the taxonomy and escalates to a fatal request
// failure instead of a field-level error.

// taxonomyError marks errors belonging to the modeled taxonomy.
type taxonomyError interface {
	error
	taxonomyError()
}

// ListensError reports a non-success response from the listens service.
type ListensError struct {
	Message string
}

func (e *ListensError) Error() string  { return e.Message }
func (e *ListensError) taxonomyError() {}

func (e *ListensError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "LISTENS_ERROR"}
}

// MusicError reports a non-success response from the music catalog,
// including malformed or missing track-detail fields.
type MusicError struct {
	Message string
}

func (e *MusicError) Error() string  { return e.Message }
func (e *MusicError) taxonomyError() {}

func (e *MusicError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "MUSIC_ERROR"}
}

// SunlightError reports a non-success response from the sunlight service.
type SunlightError struct {
	Message string
}

func (e *SunlightError) Error() string  { return e.Message }
func (e *SunlightError) taxonomyError() {}

func (e *SunlightError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "SUNLIGHT_ERROR"}
}

// IsDomainError reports whether err (or anything it wraps) belongs to the
// modeled error taxonomy. Field resolution failures with taxonomy errors
// degrade to per-field nulls; everything else aborts the request.
func IsDomainError(err error) bool {
	var te taxonomyError
	return errors.As(err, &te)
}

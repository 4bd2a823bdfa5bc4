package graphql

import (
	"github.com/graphql-go/graphql/gqlerrors"

	"github.com/morningfm/front/internal/domain"
)

// firstFatal scans an execution's errors for one that did not originate in
// the modeled domain taxonomy. A domain error means a backend told us
// something went wrong with one field and the response stays partial; any
// other resolver error means our own code (or an unmodeled collaborator
// failure) broke, and the whole request must fail.
//
// Parse and validation errors carry no original error and are client
// errors, not fatal ones.
func firstFatal(errs []gqlerrors.FormattedError) error {
	for _, fe := range errs {
		orig := originalError(fe)
		if orig != nil && !domain.IsDomainError(orig) {
			return orig
		}
	}
	return nil
}

// originalError digs the resolver-returned error out of the library's
// nested wrappers. Returns nil when the error did not come from a resolver.
func originalError(fe gqlerrors.FormattedError) error {
	err := fe.OriginalError()
	for err != nil {
		switch e := err.(type) {
		case *gqlerrors.Error:
			if e.OriginalError == nil {
				return nil
			}
			err = e.OriginalError
		case gqlerrors.Error:
			if e.OriginalError == nil {
				return nil
			}
			err = e.OriginalError
		case gqlerrors.FormattedError:
			err = e.OriginalError()
		default:
			return err
		}
	}
	return nil
}

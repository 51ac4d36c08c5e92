package validation

import (
	"errors"
	"io"

	"github.com/deppfellow/calculator-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// Bindable is a Validatable that decodes itself from the raw request body.
//
// Request types implement it when Echo's binder is too lenient for them,
// e.g. when a field may arrive as a number or as a numeric string.
type Bindable interface {
	Validatable
	BindJSON(body []byte) error
}

// BindAndValidate reads the request body into payload and validates it.
//
// Flow:
//  1. read the whole body (the body limit middleware may abort this with 413)
//  2. payload.BindJSON(body)
//  3. payload.Validate()
//
// Errors that are already *errs.HTTPError are returned untouched; anything
// else from binding or validation becomes a 400.
func BindAndValidate(c echo.Context, payload Bindable) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			return echoErr
		}
		return errs.NewBadRequestError("No data provided")
	}

	if err := payload.BindJSON(body); err != nil {
		return asBadRequest(err)
	}

	if err := payload.Validate(); err != nil {
		return asBadRequest(err)
	}

	return nil
}

func asBadRequest(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return errs.NewBadRequestError(err.Error())
}

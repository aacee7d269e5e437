package order

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/CameronXie/eth-order-api/internal/apperror"
)

const (
	MissingFieldsMessage = "Missing required fields"
	InvalidEmailMessage  = "Invalid email format"
	InvalidAmountMessage = "Invalid ETH amount"

	emailTag  = "order_email"
	finiteTag = "finite"
)

// emailPattern accepts local@domain.tld where no part holds whitespace or a second "@".
var emailPattern = regexp.MustCompile(`^[^\t\n\v\f\r \p{Z}\x{FEFF}@]+@[^\t\n\v\f\r \p{Z}\x{FEFF}@]+\.[^\t\n\v\f\r \p{Z}\x{FEFF}@]+$`)

// submission is the normalised form of a Payload that the struct validator runs against.
// A nil field was not provided. A provided field keeps its text form even when that text is empty,
// as for an empty array. A nil AmountETH means the key was never sent; NaN means it was sent but is
// not a number.
type submission struct {
	Email         *string  `validate:"required,order_email"`
	WalletAddress *string  `validate:"required"`
	AmountETH     *float64 `validate:"required,gt=0,finite"`
}

// Validator checks order payloads and reports the first failing rule.
type Validator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator with the order-specific rules registered.
func NewValidator() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation(emailTag, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register %s validation: %w", emailTag, err)
	}

	if err := v.RegisterValidation(finiteTag, func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		return nil, fmt.Errorf("register %s validation: %w", finiteTag, err)
	}

	return &Validator{validate: v}, nil
}

// Validate turns a payload into a Request. Rules are ranked: missing fields first, then the email
// shape, then the amount. A failure is returned as an apperror.KindValidation error carrying the
// message for the highest ranked rule that failed.
func (v *Validator) Validate(payload Payload) (*Request, error) {
	s := new(submission)
	if e := payload[FieldEmail]; isProvided(e) {
		email := textOf(e)
		s.Email = &email
	}
	if w := payload[FieldWalletAddress]; isProvided(w) {
		wallet := textOf(w)
		s.WalletAddress = &wallet
	}
	if a, ok := payload[FieldAmountETH]; ok {
		amount := parseAmount(a)
		s.AmountETH = &amount
	}

	err := v.validate.Struct(s)
	if err == nil {
		return &Request{
			Email:         *s.Email,
			WalletAddress: *s.WalletAddress,
			AmountETH:     *s.AmountETH,
		}, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, apperror.Internal(fmt.Errorf("validate order: %w", err))
	}

	return nil, apperror.Validation(firstFailure(fieldErrs))
}

func firstFailure(fieldErrs validator.ValidationErrors) string {
	emailFailed := false
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return MissingFieldsMessage
		}
		if fe.StructField() == "Email" {
			emailFailed = true
		}
	}

	if emailFailed {
		return InvalidEmailMessage
	}

	return InvalidAmountMessage
}

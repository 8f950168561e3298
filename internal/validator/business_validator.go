package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
)

// ValidationError describes a single failed rule.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates failures so a form can re-prompt all at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// ToValidationErrors converts go-playground errors into our shape.
func ToValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{
				Field:   strings.ToLower(fe.Field()),
				Message: messageForTag(fe),
				Value:   fe.Value(),
				Rule:    fe.Tag(),
			})
		}
		return errs
	}
	return ValidationErrors{{Field: "request", Message: err.Error(), Rule: "struct"}}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "taxonomy_field":
		return "must be a known taxonomy field"
	case "option_key":
		return "must be one of: A, B, C, D"
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}

// Validator wraps struct validation plus domain business rules.
type Validator struct {
	validate *validator.Validate
	business *BusinessValidator
}

func New() *Validator {
	v := &Validator{business: NewBusinessValidator()}
	v.validate = v.business.validate
	return v
}

// Validate runs struct-tag validation on any request DTO.
func (v *Validator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

func (v *Validator) GetBusinessValidator() *BusinessValidator {
	return v.business
}

// BusinessValidator handles rules that struct tags cannot express.
type BusinessValidator struct {
	validate *validator.Validate
}

func NewBusinessValidator() *BusinessValidator {
	validate := validator.New()

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

func (bv *BusinessValidator) registerBusinessRules() {
	_ = bv.validate.RegisterValidation("taxonomy_field", func(fl validator.FieldLevel) bool {
		return models.TaxonomyField(fl.Field().String()).Valid()
	})

	_ = bv.validate.RegisterValidation("option_key", func(fl validator.FieldLevel) bool {
		switch models.OptionKey(fl.Field().String()) {
		case models.OptionA, models.OptionB, models.OptionC, models.OptionD:
			return true
		}
		return false
	})
}

// Validate validates business rules for any struct.
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	if err := bv.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateContentTag checks six-field completeness. Partial tags block the
// write.
func (bv *BusinessValidator) ValidateContentTag(tag models.ContentTag) ValidationErrors {
	var errors ValidationErrors
	for _, field := range tag.MissingFields() {
		errors = append(errors, ValidationError{
			Field:   field,
			Message: "must be chosen from the taxonomy",
			Rule:    "incomplete_tag",
		})
	}
	return errors
}

// ValidateMCQCreate checks option shape and correct-key integrity on top of
// struct validation.
func (bv *BusinessValidator) ValidateMCQCreate(req *CreateMCQRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)
	errors = append(errors, bv.ValidateContentTag(req.Tag.ToTag())...)

	for _, key := range []models.OptionKey{models.OptionA, models.OptionB, models.OptionC, models.OptionD} {
		if text, ok := req.Options[key]; !ok || text == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("options.%s", key),
				Message: "option text is required",
				Rule:    "missing_option",
			})
		}
	}

	if text, ok := req.Options[req.CorrectKey]; !ok || text == "" {
		errors = append(errors, ValidationError{
			Field:   "correct_key",
			Message: "must index an existing option",
			Value:   req.CorrectKey,
			Rule:    "correct_key_integrity",
		})
	}

	return errors
}

// ValidatePaymentTransition checks the entitlement state machine:
// pending → submitted → {approved | pending}; approved is terminal.
func (bv *BusinessValidator) ValidatePaymentTransition(current, target models.PaymentStatus) ValidationErrors {
	if current.CanTransitionTo(target) {
		return nil
	}
	return ValidationErrors{{
		Field:   "payment_status",
		Message: fmt.Sprintf("cannot transition from %s to %s", current, target),
		Value:   current,
		Rule:    "business_logic",
	}}
}

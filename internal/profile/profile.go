package profile

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidZip           = errors.New("invalid ZIP code")
	ErrUnknownHomeOwnership = errors.New("unknown home ownership status")
	ErrUnknownIssue         = errors.New("unknown passionate issue")
	ErrAgeOutOfRange        = errors.New("age must be a whole number between 18 and 120")
	ErrTooManyIssues        = errors.New("too many passionate issues")
)

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// ValidZip reports whether zip is exactly five ASCII digits.
func ValidZip(zip string) bool {
	return zipPattern.MatchString(zip)
}

type UserProfile struct {
	FullName            string        `json:"fullName" validate:"required"`
	ZipCode             string        `json:"zipCode" validate:"zip5"`
	Age                 string        `json:"age" validate:"required"`
	Gender              Gender        `json:"gender" validate:"omitempty,oneof=male female"`
	Profession          string        `json:"profession"`
	Income              string        `json:"income"`
	HomeOwnershipStatus HomeOwnership `json:"homeOwnershipStatus" validate:"home_ownership"`
	PassionateIssues    []Issue       `json:"passionateIssues" validate:"unique,dive,passionate_issue"`
	Message             string        `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	mustRegister(v, "zip5", func(fl validator.FieldLevel) bool {
		return ValidZip(fl.Field().String())
	})
	mustRegister(v, "adult_age", func(fl validator.FieldLevel) bool {
		age, err := strconv.Atoi(fl.Field().String())
		return err == nil && age >= 18 && age <= 120
	})
	mustRegister(v, "home_ownership", func(fl validator.FieldLevel) bool {
		return HomeOwnership(fl.Field().String()).Known()
	})
	mustRegister(v, "passionate_issue", func(fl validator.FieldLevel) bool {
		return Issue(fl.Field().String()).Known()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate checks what the server relies on: required fields, a five digit
// ZIP and distinct, known enumeration keys. Age range and the issue cap are
// form rules; see ValidateForm.
func (p UserProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// ValidateForm applies Validate plus the rules the form enforces before
// submitting.
func (p UserProfile) ValidateForm() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := validate.Var(p.Age, "adult_age"); err != nil {
		return fmt.Errorf("%w: %q", ErrAgeOutOfRange, p.Age)
	}
	if len(p.PassionateIssues) > MaxIssues {
		return fmt.Errorf("%w: %d selected, at most %d", ErrTooManyIssues, len(p.PassionateIssues), MaxIssues)
	}
	return nil
}

// CheckOptions reports the first home ownership or issue key that is not a
// member of its enumeration.
func (p UserProfile) CheckOptions() error {
	return CheckOptions(p.HomeOwnershipStatus, p.PassionateIssues)
}

func CheckOptions(status HomeOwnership, issues []Issue) error {
	if !status.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownHomeOwnership, status)
	}
	for _, issue := range issues {
		if !issue.Known() {
			return fmt.Errorf("%w: %q", ErrUnknownIssue, issue)
		}
	}
	return nil
}

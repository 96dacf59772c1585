package utils

import (
	"ot-tracking-service/internal/pkg/catalog"
	"ot-tracking-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate      *validator.Validate
	dateOnlyRegex = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("date_only", validateDateOnly)
	validate.RegisterValidation("assessment_type", oneOfSet(constvars.AssessmentTypePre, constvars.AssessmentTypePost))
	validate.RegisterValidation("assessment_status", oneOfSet(constvars.AssessmentStatusDraft, constvars.AssessmentStatusComplete))
	validate.RegisterValidation("goal_category", keyOf(constvars.GoalCategoryNames))
	validate.RegisterValidation("goal_status", keyOf(constvars.GoalStatusNames))
	validate.RegisterValidation("attendance_status", keyOf(constvars.AttendanceStatusNames))
	validate.RegisterValidation("body_region", validateBodyRegion)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Empty values pass; pair with required when the field is mandatory.
func validateDateOnly(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if !dateOnlyRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse(constvars.DateOnlyLayout, value)
	return err == nil
}

func validateBodyRegion(fl validator.FieldLevel) bool {
	return catalog.IsValidRegion(catalog.Region(fl.Field().String()))
}

func oneOfSet(values ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		for _, allowed := range values {
			if value == allowed {
				return true
			}
		}
		return false
	}
}

func keyOf(names map[string]string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		_, ok := names[value]
		return ok
	}
}

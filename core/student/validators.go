package student

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/edulab/markboard/core"
)

var (
	allSubjectsTag  = "allsubjects"
	allSubjectsText = "marks are required for every subject"
)

// InitValidators registers the student package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(allSubjectsTag, allSubjectsValidation)
	core.RegisterCustomTranslation(validate, translator, allSubjectsTag, allSubjectsText)
}

// allSubjectsValidation requires a mark for each of the 5 subjects and
// rejects unknown subject keys.
func allSubjectsValidation(fl validator.FieldLevel) bool {
	marks, ok := fl.Field().Interface().(Marks)
	if !ok {
		return false
	}
	if len(marks) != len(Subjects) {
		return false
	}
	for _, subj := range Subjects {
		if _, ok := marks[subj]; !ok {
			return false
		}
	}
	return true
}

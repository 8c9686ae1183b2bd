package field

import (
	"github.com/goliatone/go-formfield/pkg/style"
	"github.com/goliatone/go-formfield/pkg/theme"
)

type fieldStyles struct {
	field                               style.Style
	fieldHorizontal                     style.Style
	fieldValidationWrapper              style.Style
	fieldValidationWrapperHorizontal    style.Style
	validationMessageHorizontalOverflow style.Style
}

type fieldClasses struct {
	field                               string
	fieldHorizontal                     string
	fieldValidationWrapper              string
	fieldValidationWrapperHorizontal    string
	validationMessageHorizontalOverflow string
}

func getStyles(t *theme.Theme) fieldStyles {
	return fieldStyles{
		field: style.Declare(
			"display", "flex",
			"flex-direction", "column",
			"margin-bottom", t.Spacing(2),
		),
		fieldHorizontal: style.Declare(
			"flex-direction", "row",
			"justify-content", "space-between",
			"flex-wrap", "wrap",
		),
		fieldValidationWrapper: style.Declare(
			"margin-top", t.Spacing(0.5),
		),
		fieldValidationWrapperHorizontal: style.Declare(
			"flex", "1 1 100%",
		),
		validationMessageHorizontalOverflow: style.Declare(
			"width", "0",
			"overflow-x", "visible",
		).Nest("& > *", "white-space", "nowrap"),
	}
}

func (s fieldStyles) register(sheet *style.Sheet) fieldClasses {
	return fieldClasses{
		field:                               sheet.Class(s.field),
		fieldHorizontal:                     sheet.Class(s.fieldHorizontal),
		fieldValidationWrapper:              sheet.Class(s.fieldValidationWrapper),
		fieldValidationWrapperHorizontal:    sheet.Class(s.fieldValidationWrapperHorizontal),
		validationMessageHorizontalOverflow: sheet.Class(s.validationMessageHorizontalOverflow),
	}
}

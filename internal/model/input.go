package model

// MealInput is the client-supplied description used for create and replace.
// It deliberately has no id or owner field: ownership comes from the
// authorization layer and ids from the path, so a stray "id" or "userId"
// key in the payload is ignored by decoding and can never reach a Meal.
type MealInput struct {
	MealDate    *string `json:"mealDate"`
	MealTime    *string `json:"mealTime"`
	MealContent *string `json:"mealContent"`
}

const requiredMessage = "must not be null"

// Validate checks structural completeness, then value well-formedness.
//
// Precedence is part of the observable contract: all missing-field
// violations are reported together, but only the first malformed value
// (in field declaration order) is reported.
func (in MealInput) Validate() error {
	missing := map[string]string{}
	if in.MealDate == nil {
		missing["mealDate"] = requiredMessage
	}
	if in.MealTime == nil {
		missing["mealTime"] = requiredMessage
	}
	if in.MealContent == nil {
		missing["mealContent"] = requiredMessage
	}
	if len(missing) > 0 {
		return ValidationError{Fields: missing}
	}

	if _, err := ParseDate(*in.MealDate); err != nil {
		return ValidationError{Fields: map[string]string{
			"mealDate": invalidValueMessage("mealDate", *in.MealDate),
		}}
	}
	if _, err := ParseMealTime(*in.MealTime); err != nil {
		return ValidationError{Fields: map[string]string{
			"mealTime": invalidValueMessage("mealTime", *in.MealTime),
		}}
	}
	if _, err := ParseMealContent(*in.MealContent); err != nil {
		return ValidationError{Fields: map[string]string{
			"mealContent": invalidValueMessage("mealContent", *in.MealContent),
		}}
	}
	return nil
}

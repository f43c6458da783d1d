package model

// NewMealFromInput converts a validated MealInput into a Meal owned by
// ownerID. The result always has a zero ID; the store assigns one on
// insert and the service overrides it on replace.
func NewMealFromInput(in MealInput, ownerID string) (Meal, error) {
	if err := in.Validate(); err != nil {
		return Meal{}, err
	}
	d, err := ParseDate(*in.MealDate)
	if err != nil {
		return Meal{}, err
	}
	mt, err := ParseMealTime(*in.MealTime)
	if err != nil {
		return Meal{}, err
	}
	mc, err := ParseMealContent(*in.MealContent)
	if err != nil {
		return Meal{}, err
	}
	return Meal{
		OwnerID:     ownerID,
		MealDate:    d,
		MealTime:    mt,
		MealContent: mc,
	}, nil
}

// NewMealView projects a persisted Meal into its full read representation.
func NewMealView(m Meal) MealView {
	return MealView{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		MealDate:    m.MealDate,
		MealTime:    m.MealTime,
		MealContent: m.MealContent,
	}
}

// NewMealSummary projects a persisted Meal into its id-only representation.
func NewMealSummary(m Meal) MealSummary {
	return MealSummary{ID: m.ID}
}

package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// MealTime is the time of day a meal was eaten.
type MealTime string

const (
	Breakfast MealTime = "BREAKFAST"
	Lunch     MealTime = "LUNCH"
	Dinner    MealTime = "DINNER"
)

// ParseMealTime maps a raw string onto the closed MealTime set.
func ParseMealTime(s string) (MealTime, error) {
	switch MealTime(s) {
	case Breakfast, Lunch, Dinner:
		return MealTime(s), nil
	}
	return "", fmt.Errorf("unknown meal time %q", s)
}

// MealContent is the main content category of a meal.
type MealContent string

const (
	Vegan      MealContent = "VEGAN"
	Vegetarian MealContent = "VEGETARIAN"
	Fish       MealContent = "FISH"
	Chicken    MealContent = "CHICKEN"
	Pork       MealContent = "PORK"
	Lamb       MealContent = "LAMB"
	Beef       MealContent = "BEEF"
)

// ParseMealContent maps a raw string onto the closed MealContent set.
func ParseMealContent(s string) (MealContent, error) {
	switch MealContent(s) {
	case Vegan, Vegetarian, Fish, Chicken, Pork, Lamb, Beef:
		return MealContent(s), nil
	}
	return "", fmt.Errorf("unknown meal content %q", s)
}

const dateLayout = "2006-01-02"

// Date is a timezone-naive calendar date, serialized as "2006-01-02".
// It is interpreted in the owner's local context; no clock component.
type Date struct {
	t time.Time
}

// ParseDate parses a "2006-01-02" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string { return d.t.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Meal is the persisted record. ID is assigned by the store on first save;
// OwnerID is set exclusively by the service from the resolved effective
// owner, never taken from client input.
type Meal struct {
	ID          int64       `json:"id"`
	OwnerID     string      `json:"userId"`
	MealDate    Date        `json:"mealDate"`
	MealTime    MealTime    `json:"mealTime"`
	MealContent MealContent `json:"mealContent"`
}

// MealView is the full read projection of a Meal.
type MealView struct {
	ID          int64       `json:"id"`
	OwnerID     string      `json:"userId"`
	MealDate    Date        `json:"mealDate"`
	MealTime    MealTime    `json:"mealTime"`
	MealContent MealContent `json:"mealContent"`
}

// MealSummary is the id-only projection returned by create and replace.
type MealSummary struct {
	ID int64 `json:"id"`
}

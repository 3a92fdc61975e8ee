package models

type Category string

const (
	CategoryHands Category = "hands"
	CategoryFeet  Category = "feet"
	CategoryCombo Category = "combo"
)

type Service struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Duration int      `json:"duration"` // minutes
	Price    float64  `json:"price"`
	Category Category `json:"category"`
	ImageURL string   `json:"image_url"`
}

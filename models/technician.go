package models

type Technician struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ImageURL    string   `json:"image_url"`
	Specialties []string `json:"specialties"`
	Rating      float64  `json:"rating"` // 0 to 5
}

package models

type GalleryPhoto struct {
	ID       string `json:"id"`
	Date     string `json:"date"` // display date, e.g. "Dec 18, 2025"
	Service  string `json:"service"`
	Tech     string `json:"tech"`
	ImageURL string `json:"image_url"`
}

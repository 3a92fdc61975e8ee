package models

// BeautyProfile holds the customer's saved nail preferences. The client edits
// a draft copy and commits it in full with a single update; there is no
// partial merge.
type BeautyProfile struct {
	Email        string   `json:"email"`
	FavTech      string   `json:"fav_tech"`
	NailLength   string   `json:"nail_length"`
	NailShape    string   `json:"nail_shape"`
	Finish       string   `json:"finish"`
	FavColors    []string `json:"fav_colors"`
	FavBrands    []string `json:"fav_brands"`
	FavService   string   `json:"fav_service"`
	DesignStyles []string `json:"design_styles"`
	Notes        string   `json:"notes"`
}

package models

// DashboardStats aggregates store activity for the admin dashboard.
type DashboardStats struct {
	Orders struct {
		Total     int `json:"total"`
		Today     int `json:"today"`
		Pending   int `json:"pending"`
		Completed int `json:"completed"`
	} `json:"orders"`
	Revenue struct {
		Total     float64 `json:"total"`
		Today     float64 `json:"today"`
		ThisMonth float64 `json:"this_month"`
	} `json:"revenue"`
	Products struct {
		Total      int `json:"total"`
		LowStock   int `json:"low_stock"`
		OutOfStock int `json:"out_of_stock"`
	} `json:"products"`
	Users struct {
		Total    int `json:"total"`
		NewToday int `json:"new_today"`
	} `json:"users"`
}

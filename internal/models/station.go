package models

// Station is a static directory record (police or fire).
type Station struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

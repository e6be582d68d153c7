package external

// ReverseGeocodeResponse represents the response from the reverse geocoding API
type ReverseGeocodeResponse struct {
	DisplayName string     `json:"display_name"`
	Address     AddressDTO `json:"address"`
	Error       string     `json:"error"`
}

// AddressDTO holds the address parts used to name a place
type AddressDTO struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	State   string `json:"state"`
	Country string `json:"country"`
}

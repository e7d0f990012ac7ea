package countries

// Country es dato de referencia: se crea (alta manual o import xlsx) y no se modifica.
type Country struct {
	ID   string
	Name string
}

type CountryAddRequest struct {
	Name string
}

type CountryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r CountryAddRequest) ToCountry() Country {
	return Country{Name: r.Name}
}

func (c Country) ToCountryResponse() CountryResponse {
	return CountryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

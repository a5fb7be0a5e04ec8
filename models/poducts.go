package models

type Product struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Brand            string            `json:"brand"`
	Category         string            `json:"category"`
	Price            float64           `json:"price"` // never negative
	Rating           float64           `json:"rating"`
	ReviewCount      int               `json:"reviewCount"`
	Stock            int               `json:"stock"` // never negative
	Images           []string          `json:"images"`
	ShortDescription string            `json:"shortDescription"`
	Description      string            `json:"description"`
	Highlights       []string          `json:"highlights"`
	Specs            map[string]string `json:"specs"`
}

// Clone deep-copies the product so snapshot holders cannot alias the
// store's slices and map.
func (p Product) Clone() Product {
	next := p
	next.Images = append([]string(nil), p.Images...)
	next.Highlights = append([]string(nil), p.Highlights...)
	if p.Specs != nil {
		next.Specs = make(map[string]string, len(p.Specs))
		for k, v := range p.Specs {
			next.Specs[k] = v
		}
	}
	return next
}

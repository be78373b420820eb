package models

// PlaceholderImage dipakai ketika item menu tidak punya gambar sendiri.
const PlaceholderImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&w=800&q=80"

// MenuItem adalah dokumen menu dari API pusat. Client tidak pernah
// mengubahnya; cart menyimpan snapshot apa adanya dari saat item ditambahkan.
type MenuItem struct {
	ID          string  `json:"_id"`
	CategoryID  string  `json:"categoryId"`
	Name        string  `json:"name"`
	NameEn      string  `json:"nameEn,omitempty"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// DisplayImage mengembalikan imageUrl, lalu image, lalu placeholder.
func (m MenuItem) DisplayImage() string {
	if m.ImageURL != "" {
		return m.ImageURL
	}
	if m.Image != "" {
		return m.Image
	}
	return PlaceholderImage
}

type MenuCategory struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	NameEn       string `json:"nameEn,omitempty"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

package rest

import (
	"time"

	"aqar-service/internal/core/domain"
)

// Request DTOs. Bodies are schema-validated before unmarshalling, so the
// structs carry no validation tags.

type PropertyPayload struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Size          int      `json:"size"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	PropertyType  string   `json:"property_type"`
	GovernorateID *int     `json:"governorate_id"`
	DirectorateID *int     `json:"directorate_id"`
	Village       string   `json:"village"`
	Basin         string   `json:"basin"`
	Neighborhood  string   `json:"neighborhood"`
	PlotNumber    string   `json:"plot_number"`
	Address       string   `json:"address"`
	Images        []string `json:"images"`
	Featured      bool     `json:"featured"`
	Available     *bool    `json:"available"`
}

// ToDomain maps the payload onto a domain property. Available defaults to
// published when the field is omitted.
func (p *PropertyPayload) ToDomain() *domain.Property {
	available := true
	if p.Available != nil {
		available = *p.Available
	}
	return &domain.Property{
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Size:          p.Size,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		PropertyType:  p.PropertyType,
		GovernorateID: p.GovernorateID,
		DirectorateID: p.DirectorateID,
		Village:       p.Village,
		Basin:         p.Basin,
		Neighborhood:  p.Neighborhood,
		PlotNumber:    p.PlotNumber,
		Address:       p.Address,
		Images:        p.Images,
		Featured:      p.Featured,
		Available:     available,
	}
}

type SearchFiltersRequest struct {
	MinPrice      *float64 `json:"min_price"`
	MaxPrice      *float64 `json:"max_price"`
	MinSize       *int     `json:"min_size"`
	MaxSize       *int     `json:"max_size"`
	MinBedrooms   *int     `json:"min_bedrooms"`
	MinBathrooms  *int     `json:"min_bathrooms"`
	PropertyType  *string  `json:"property_type"`
	GovernorateID *int     `json:"governorate_id"`
	DirectorateID *int     `json:"directorate_id"`
	Location      *string  `json:"location"`
}

func (f *SearchFiltersRequest) ToDomain() domain.PropertyFilters {
	return domain.PropertyFilters{
		MinPrice:      f.MinPrice,
		MaxPrice:      f.MaxPrice,
		MinSize:       f.MinSize,
		MaxSize:       f.MaxSize,
		MinBedrooms:   f.MinBedrooms,
		MinBathrooms:  f.MinBathrooms,
		PropertyType:  f.PropertyType,
		GovernorateID: f.GovernorateID,
		DirectorateID: f.DirectorateID,
		Location:      f.Location,
	}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type NewsletterRequest struct {
	Email string `json:"email"`
}

type EntrustmentRequest struct {
	OwnerName     string `json:"owner_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	PropertyType  string `json:"property_type"`
	GovernorateID *int   `json:"governorate_id"`
	Details       string `json:"details"`
}

type PropertyRequestRequest struct {
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	PropertyType  string   `json:"property_type"`
	GovernorateID *int     `json:"governorate_id"`
	MinPrice      *float64 `json:"min_price"`
	MaxPrice      *float64 `json:"max_price"`
	Details       string   `json:"details"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type GovernoratePayload struct {
	NameAr string `json:"name_ar"`
	NameEn string `json:"name_en"`
}

type DirectoratePayload struct {
	GovernorateID int    `json:"governorate_id"`
	NameAr        string `json:"name_ar"`
	NameEn        string `json:"name_en"`
}

type PropertyTypePayload struct {
	NameAr string `json:"name_ar"`
	NameEn string `json:"name_en"`
	Active *bool  `json:"active"`
}

type SettingPayload struct {
	Value string `json:"value"`
}

type UploadDeleteRequest struct {
	URL string `json:"url"`
}

// Response DTOs.

type PropertyResponse struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Size          int       `json:"size"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	PropertyType  string    `json:"property_type"`
	GovernorateID *int      `json:"governorate_id"`
	DirectorateID *int      `json:"directorate_id"`
	Village       string    `json:"village"`
	Basin         string    `json:"basin"`
	Neighborhood  string    `json:"neighborhood"`
	PlotNumber    string    `json:"plot_number"`
	Address       string    `json:"address"`
	Images        []string  `json:"images"`
	Featured      bool      `json:"featured"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Size:          p.Size,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		PropertyType:  p.PropertyType,
		GovernorateID: p.GovernorateID,
		DirectorateID: p.DirectorateID,
		Village:       p.Village,
		Basin:         p.Basin,
		Neighborhood:  p.Neighborhood,
		PlotNumber:    p.PlotNumber,
		Address:       p.Address,
		Images:        p.Images,
		Featured:      p.Featured,
		Available:     p.Available,
		CreatedAt:     p.CreatedAt,
	}
}

func NewPropertyListResponse(properties []domain.Property) []PropertyResponse {
	response := make([]PropertyResponse, len(properties))
	for i := range properties {
		response[i] = NewPropertyResponse(&properties[i])
	}
	return response
}

type GovernorateResponse struct {
	ID        int       `json:"id"`
	NameAr    string    `json:"name_ar"`
	NameEn    string    `json:"name_en"`
	CreatedAt time.Time `json:"created_at"`
}

func NewGovernorateResponse(g *domain.Governorate) GovernorateResponse {
	return GovernorateResponse{ID: g.ID, NameAr: g.NameAr, NameEn: g.NameEn, CreatedAt: g.CreatedAt}
}

type DirectorateResponse struct {
	ID            int       `json:"id"`
	GovernorateID int       `json:"governorate_id"`
	NameAr        string    `json:"name_ar"`
	NameEn        string    `json:"name_en"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewDirectorateResponse(d *domain.Directorate) DirectorateResponse {
	return DirectorateResponse{ID: d.ID, GovernorateID: d.GovernorateID, NameAr: d.NameAr, NameEn: d.NameEn, CreatedAt: d.CreatedAt}
}

type PropertyTypeResponse struct {
	ID        int       `json:"id"`
	NameAr    string    `json:"name_ar"`
	NameEn    string    `json:"name_en"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewPropertyTypeResponse(t *domain.PropertyType) PropertyTypeResponse {
	return PropertyTypeResponse{ID: t.ID, NameAr: t.NameAr, NameEn: t.NameEn, Active: t.Active, CreatedAt: t.CreatedAt}
}

type SettingResponse struct {
	ID        int       `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSettingResponse(s *domain.SiteSetting) SettingResponse {
	return SettingResponse{ID: s.ID, Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt}
}

type ContactResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, Subject: c.Subject, Message: c.Message, CreatedAt: c.CreatedAt}
}

type NewsletterResponse struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNewsletterResponse(n *domain.Newsletter) NewsletterResponse {
	return NewsletterResponse{ID: n.ID, Email: n.Email, CreatedAt: n.CreatedAt}
}

type EntrustmentResponse struct {
	ID            int       `json:"id"`
	OwnerName     string    `json:"owner_name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	PropertyType  string    `json:"property_type"`
	GovernorateID *int      `json:"governorate_id"`
	Details       string    `json:"details"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewEntrustmentResponse(e *domain.Entrustment) EntrustmentResponse {
	return EntrustmentResponse{ID: e.ID, OwnerName: e.OwnerName, Phone: e.Phone, Email: e.Email, PropertyType: e.PropertyType, GovernorateID: e.GovernorateID, Details: e.Details, CreatedAt: e.CreatedAt}
}

type PropertyRequestResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	PropertyType  string    `json:"property_type"`
	GovernorateID *int      `json:"governorate_id"`
	MinPrice      *float64  `json:"min_price"`
	MaxPrice      *float64  `json:"max_price"`
	Details       string    `json:"details"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewPropertyRequestResponse(pr *domain.PropertyRequest) PropertyRequestResponse {
	return PropertyRequestResponse{ID: pr.ID, Name: pr.Name, Phone: pr.Phone, Email: pr.Email, PropertyType: pr.PropertyType, GovernorateID: pr.GovernorateID, MinPrice: pr.MinPrice, MaxPrice: pr.MaxPrice, Details: pr.Details, CreatedAt: pr.CreatedAt}
}

type AdminResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func NewAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{ID: a.ID, Username: a.Username, Email: a.Email}
}

type UploadedImageResponse struct {
	URL          string `json:"url"`
	ThumbURL     string `json:"thumb_url"`
	SmallURL     string `json:"small_url"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
}

func NewUploadedImageResponse(img *domain.UploadedImage) UploadedImageResponse {
	return UploadedImageResponse{URL: img.URL, ThumbURL: img.ThumbURL, SmallURL: img.SmallURL, OriginalName: img.OriginalName, Size: img.Size}
}

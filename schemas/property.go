package schemas

import "rental-backend/models"

// PropertyCreate requires every key to be present. Strings are pointers so
// that an empty string is accepted while a missing key is not.
type PropertyCreate struct {
	Title       *string  `json:"title" binding:"required"`
	Description *string  `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Location    *string  `json:"location" binding:"required"`
	HostID      *int64   `json:"host_id" binding:"required"`
}

func (p PropertyCreate) ToModel() models.Property {
	return models.Property{
		Title:       deref(p.Title),
		Description: deref(p.Description),
		Price:       deref(p.Price),
		Location:    deref(p.Location),
		HostID:      deref(p.HostID),
	}
}

// Fields maps every column to its new value, used by PUT.
func (p PropertyCreate) Fields() map[string]any {
	return map[string]any{
		"title":       deref(p.Title),
		"description": deref(p.Description),
		"price":       deref(p.Price),
		"location":    deref(p.Location),
		"host_id":     deref(p.HostID),
	}
}

// PropertyPatch carries a partial update. Only non-nil fields are applied.
type PropertyPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Location    *string  `json:"location"`
	HostID      *int64   `json:"host_id"`
}

func (p PropertyPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.HostID != nil {
		fields["host_id"] = *p.HostID
	}
	return fields
}

type Property struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	HostID      int64   `json:"host_id"`
}

func NewProperty(m *models.Property) Property {
	return Property{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Location:    m.Location,
		HostID:      m.HostID,
	}
}

func NewProperties(list []models.Property) []Property {
	out := make([]Property, 0, len(list))
	for i := range list {
		out = append(out, NewProperty(&list[i]))
	}
	return out
}

type PropertyListQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=10" binding:"min=0"`
}

// PropertySearchQuery uses pointers so that "not supplied" and "zero" stay
// distinguishable.
type PropertySearchQuery struct {
	Location *string  `form:"location"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

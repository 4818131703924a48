package schemas

import "rental-backend/models"

// ReviewCreate.PropertyID is optional on the wire: the nested reviews route
// always overwrites it with the property id from the path. Comment may be
// empty but must be present.
type ReviewCreate struct {
	PropertyID *uint   `json:"property_id"`
	UserID     *int64  `json:"user_id" binding:"required"`
	Rating     *int    `json:"rating" binding:"required"`
	Comment    *string `json:"comment" binding:"required"`
}

func (r ReviewCreate) ToModel() models.Review {
	return models.Review{
		PropertyID: deref(r.PropertyID),
		UserID:     deref(r.UserID),
		Rating:     deref(r.Rating),
		Comment:    deref(r.Comment),
	}
}

type Review struct {
	ID         uint   `json:"id"`
	PropertyID uint   `json:"property_id"`
	UserID     int64  `json:"user_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func NewReview(m *models.Review) Review {
	return Review{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		UserID:     m.UserID,
		Rating:     m.Rating,
		Comment:    m.Comment,
	}
}

func NewReviews(list []models.Review) []Review {
	out := make([]Review, 0, len(list))
	for i := range list {
		out = append(out, NewReview(&list[i]))
	}
	return out
}

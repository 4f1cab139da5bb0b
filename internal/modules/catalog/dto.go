package catalog

import "leprive/internal/domain"

// CompanionCard is the short shape the gallery renders.
type CompanionCard struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Age          int      `json:"age"`
	Location     string   `json:"location"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Price        string   `json:"price"`
	Tags         []string `json:"tags"`
	Availability string   `json:"availability"`
	Description  string   `json:"description"`
}

type ListResponse struct {
	Companions []CompanionCard `json:"companions"`
	Total      int             `json:"total"`
	Expanded   bool            `json:"expanded"`
}

func ToCompanionCard(c domain.Companion) CompanionCard {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return CompanionCard{
		ID:           c.ID,
		Name:         c.Name,
		Age:          c.Age,
		Location:     c.Location,
		Rating:       c.Rating,
		Reviews:      c.Reviews,
		Price:        c.Price,
		Tags:         tags,
		Availability: c.Availability,
		Description:  c.Description,
	}
}

func ToListResponse(companions []domain.Companion, total int, expanded bool) ListResponse {
	cards := make([]CompanionCard, len(companions))
	for i, c := range companions {
		cards[i] = ToCompanionCard(c)
	}
	return ListResponse{Companions: cards, Total: total, Expanded: expanded}
}

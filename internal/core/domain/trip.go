package domain

import "github.com/google/uuid"

// Trip is a single planned journey owned by a user. The owning user is fixed
// at creation; every other field can change through a partial update.
type Trip struct {
	TripID          uuid.UUID `json:"tripId"`
	UserID          uuid.UUID `json:"userId"`
	DestinationName string    `json:"destinationName"`
	PlanDate        Date      `json:"planDate"`
	StartDate       Date      `json:"startDate"`
	EndDate         Date      `json:"endDate"`
	TripHighlights  *string   `json:"tripHighlights"`
	LinkPdf         *string   `json:"linkPdf"`
	ImgLink         *string   `json:"imgLink"`
}

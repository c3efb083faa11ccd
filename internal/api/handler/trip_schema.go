package handler

import (
	"github.com/wanderplan/travel-planner-api/internal/core/domain"
	"github.com/wanderplan/travel-planner-api/internal/core/ports"
)

// Dates travel as "YYYY-MM-DD" strings and are parsed into domain.Date in the
// handler so a malformed date is a 400, never a database error.

type createTripRequest struct {
	UserID          string  `json:"userId"          validate:"required,uuid"`
	DestinationName string  `json:"destinationName" validate:"required"`
	PlanDate        string  `json:"planDate"        validate:"required,datetime=2006-01-02"`
	StartDate       string  `json:"startDate"       validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"endDate"         validate:"required,datetime=2006-01-02"`
	TripHighlights  *string `json:"tripHighlights"`
	LinkPdf         *string `json:"linkPdf"`
	ImgLink         *string `json:"imgLink"`
}

// updateTripRequest is a sparse patch: nil fields are left untouched.
type updateTripRequest struct {
	DestinationName *string `json:"destinationName"`
	PlanDate        *string `json:"planDate"        validate:"omitempty,datetime=2006-01-02"`
	StartDate       *string `json:"startDate"       validate:"omitempty,datetime=2006-01-02"`
	EndDate         *string `json:"endDate"         validate:"omitempty,datetime=2006-01-02"`
	TripHighlights  *string `json:"tripHighlights"`
	LinkPdf         *string `json:"linkPdf"`
	ImgLink         *string `json:"imgLink"`
}

// toPatch converts the request into a repository patch. Dates are already
// format-checked by the validator.
func (r updateTripRequest) toPatch() (ports.TripPatch, error) {
	patch := ports.TripPatch{
		DestinationName: r.DestinationName,
		TripHighlights:  r.TripHighlights,
		LinkPdf:         r.LinkPdf,
		ImgLink:         r.ImgLink,
	}

	var err error
	if patch.PlanDate, err = parseOptionalDate(r.PlanDate); err != nil {
		return ports.TripPatch{}, err
	}
	if patch.StartDate, err = parseOptionalDate(r.StartDate); err != nil {
		return ports.TripPatch{}, err
	}
	if patch.EndDate, err = parseOptionalDate(r.EndDate); err != nil {
		return ports.TripPatch{}, err
	}
	return patch, nil
}

func parseOptionalDate(s *string) (*domain.Date, error) {
	if s == nil {
		return nil, nil
	}
	d, err := domain.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wanderplan/travel-planner-api/internal/core/domain"
	"github.com/wanderplan/travel-planner-api/internal/core/ports"
)

const tripColumns = `tripid, userid, destinationname, plandate, startdate, enddate, triphighlights, linkpdf, imglink`

// TripRepository is the Postgres implementation of ports.TripRepository.
type TripRepository struct {
	db Querier
}

func NewTripRepository(db Querier) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	const q = `
		INSERT INTO trips (userid, destinationname, plandate, startdate, enddate, triphighlights, linkpdf, imglink)
		VALUES (@userid, @destinationname, @plandate, @startdate, @enddate, @triphighlights, @linkpdf, @imglink)
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"userid":          trip.UserID,
		"destinationname": trip.DestinationName,
		"plandate":        trip.PlanDate,
		"startdate":       trip.StartDate,
		"enddate":         trip.EndDate,
		"triphighlights":  trip.TripHighlights,
		"linkpdf":         trip.LinkPdf,
		"imglink":         trip.ImgLink,
	})

	created, err := scanTrip(row)
	if err != nil {
		if pgErrorCode(err) == foreignKeyViolationCode {
			// Owner vanished between the existence check and the insert;
			// the foreign key reports it as the same domain error.
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("postgres.TripRepository.Create: %w", err)
	}
	return created, nil
}

func (r *TripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE userid = @userid
		ORDER BY plandate DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"userid": userID})
	if err != nil {
		return nil, fmt.Errorf("postgres.TripRepository.ListByUser: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres.TripRepository.ListByUser: scan: %w", err)
		}
		trips = append(trips, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.TripRepository.ListByUser: rows: %w", err)
	}

	return trips, nil
}

func (r *TripRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE tripid = @tripid`

	trip, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"tripid": id}))
	if err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("postgres.TripRepository.FindByID: %w", err)
	}
	return trip, nil
}

func (r *TripRepository) Update(ctx context.Context, id uuid.UUID, patch ports.TripPatch) (*domain.Trip, error) {
	set := newSetClauses()
	if patch.DestinationName != nil {
		set.add("destinationname", *patch.DestinationName)
	}
	if patch.PlanDate != nil {
		set.add("plandate", *patch.PlanDate)
	}
	if patch.StartDate != nil {
		set.add("startdate", *patch.StartDate)
	}
	if patch.EndDate != nil {
		set.add("enddate", *patch.EndDate)
	}
	if patch.TripHighlights != nil {
		set.add("triphighlights", *patch.TripHighlights)
	}
	if patch.LinkPdf != nil {
		set.add("linkpdf", *patch.LinkPdf)
	}
	if patch.ImgLink != nil {
		set.add("imglink", *patch.ImgLink)
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	args := set.args
	args["tripid"] = id
	q := `UPDATE trips SET ` + set.clause() + `
		WHERE tripid = @tripid
		RETURNING ` + tripColumns

	trip, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("postgres.TripRepository.Update: %w", err)
	}
	return trip, nil
}

func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE tripid = @tripid`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"tripid": id})
	if err != nil {
		return fmt.Errorf("postgres.TripRepository.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

func scanTrip(s scanner) (*domain.Trip, error) {
	var (
		t      domain.Trip
		id     pgtype.UUID
		userID pgtype.UUID
	)
	err := s.Scan(&id, &userID, &t.DestinationName, &t.PlanDate, &t.StartDate, &t.EndDate,
		&t.TripHighlights, &t.LinkPdf, &t.ImgLink)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, err
	}
	t.TripID = uuid.UUID(id.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	return &t, nil
}

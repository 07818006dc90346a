package order

import (
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// FileRef is an opaque reference to an uploaded attachment. The engine stores
// references only, never file bytes; storage and CDN mechanics live outside.
type FileRef struct {
	URL         string
	Name        string
	ContentType string
}

// Validate checks the reference carries at least a URL and a file name.
func (f FileRef) Validate() error {
	if f.URL == "" {
		return errs.NewValueIsRequiredError("file url")
	}
	if f.Name == "" {
		return errs.NewValueIsRequiredError("file name")
	}
	return nil
}

func validateFiles(files []FileRef) error {
	for i, f := range files {
		if err := f.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("file %d", i), err)
		}
	}
	return nil
}

// Rating is a party's star rating of a completed order.
type Rating struct {
	stars   int
	comment string
	ratedBy kernel.UUID
	ratedAt time.Time
}

const (
	// RatingMin is the lowest permitted star rating.
	RatingMin = 1
	// RatingMax is the highest permitted star rating.
	RatingMax = 5
)

func newRating(stars int, comment string, ratedBy kernel.UUID, ratedAt time.Time) (Rating, error) {
	if stars < RatingMin || stars > RatingMax {
		return Rating{}, errs.NewValueIsOutOfRangeError("stars", stars, RatingMin, RatingMax)
	}
	return Rating{stars: stars, comment: comment, ratedBy: ratedBy, ratedAt: ratedAt}, nil
}

// RestoreRating reconstructs a rating from persistence without re-validation.
func RestoreRating(stars int, comment string, ratedBy kernel.UUID, ratedAt time.Time) Rating {
	return Rating{stars: stars, comment: comment, ratedBy: ratedBy, ratedAt: ratedAt}
}

// Stars returns the star value of the rating.
func (r Rating) Stars() int { return r.stars }

// Comment returns the free-text comment attached to the rating.
func (r Rating) Comment() string { return r.comment }

// RatedBy returns the party that submitted the rating.
func (r Rating) RatedBy() kernel.UUID { return r.ratedBy }

// RatedAt returns when the rating was submitted.
func (r Rating) RatedAt() time.Time { return r.ratedAt }

// Note is additional information attached by the client while work is in
// progress.
type Note struct {
	Text    string
	Files   []FileRef
	AddedAt time.Time
}

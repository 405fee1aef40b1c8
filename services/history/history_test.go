package history

import (
	"context"
	"errors"
	"testing"

	"parenthub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHistoryRepo struct {
	records map[string]*models.HistoryTransaction
}

func (s *stubHistoryRepo) Create(t *models.HistoryTransaction) error {
	s.records[t.ID] = t
	return nil
}

func (s *stubHistoryRepo) GetByID(id string) (*models.HistoryTransaction, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return r, nil
}

func (s *stubHistoryRepo) GetByUser(string) ([]models.HistoryTransaction, error) { return nil, nil }

func (s *stubHistoryRepo) SetReviewed(id string) error {
	r, ok := s.records[id]
	if !ok || r.Reviewed {
		return errors.New("no unreviewed record")
	}
	r.Reviewed = true
	return nil
}

func (s *stubHistoryRepo) Watch(context.Context, string) (<-chan []models.HistoryTransaction, error) {
	return nil, errors.New("not supported")
}

type recordingAggregator struct {
	collection string
	resourceID string
	stars      int
	calls      int
	err        error
}

func (r *recordingAggregator) SubmitRating(collection, resourceID string, stars int) error {
	r.calls++
	r.collection = collection
	r.resourceID = resourceID
	r.stars = stars
	return r.err
}

func newHistoryService(record *models.HistoryTransaction) (*Service, *stubHistoryRepo, *recordingAggregator) {
	repo := &stubHistoryRepo{records: map[string]*models.HistoryTransaction{}}
	if record != nil {
		repo.records[record.ID] = record
	}
	agg := &recordingAggregator{}
	return &Service{History: repo, Ratings: agg}, repo, agg
}

func TestSubmitReview_FoldsRatingAndMarksReviewed(t *testing.T) {
	svc, repo, agg := newHistoryService(&models.HistoryTransaction{
		ID: "h1", UserID: "user-1", ProductID: "doc-1", Category: models.CategoryConsultation,
	})

	require.NoError(t, svc.SubmitReview("user-1", "h1", 5))

	assert.Equal(t, 1, agg.calls)
	assert.Equal(t, "doctors", agg.collection)
	assert.Equal(t, "doc-1", agg.resourceID)
	assert.Equal(t, 5, agg.stars)
	assert.True(t, repo.records["h1"].Reviewed)
}

func TestSubmitReview_AtMostOnce(t *testing.T) {
	svc, _, agg := newHistoryService(&models.HistoryTransaction{
		ID: "h1", UserID: "user-1", ProductID: "p1", Category: models.CategoryShopping,
	})

	require.NoError(t, svc.SubmitReview("user-1", "h1", 4))
	err := svc.SubmitReview("user-1", "h1", 4)
	assert.Error(t, err)
	assert.Equal(t, 1, agg.calls)
}

func TestSubmitReview_RatingFailureStillCompletes(t *testing.T) {
	svc, repo, agg := newHistoryService(&models.HistoryTransaction{
		ID: "h1", UserID: "user-1", ProductID: "s1", Category: models.CategorySitter,
	})
	agg.err = errors.New("transaction aborted")

	require.NoError(t, svc.SubmitReview("user-1", "h1", 3))
	assert.True(t, repo.records["h1"].Reviewed)
}

func TestSubmitReview_GuardsOwnershipAndStars(t *testing.T) {
	svc, _, agg := newHistoryService(&models.HistoryTransaction{
		ID: "h1", UserID: "user-1", ProductID: "p1", Category: models.CategoryShopping,
	})

	assert.Error(t, svc.SubmitReview("intruder", "h1", 5))
	assert.Error(t, svc.SubmitReview("user-1", "h1", 0))
	assert.Error(t, svc.SubmitReview("user-1", "h1", 6))
	assert.Error(t, svc.SubmitReview("user-1", "missing", 5))
	assert.Zero(t, agg.calls)
}

func TestSubmitReview_DonationsAreNotRated(t *testing.T) {
	svc, repo, agg := newHistoryService(&models.HistoryTransaction{
		ID: "h1", UserID: "user-1", ProductID: "don-1", Category: models.CategoryDonation,
	})

	require.NoError(t, svc.SubmitReview("user-1", "h1", 5))
	assert.Zero(t, agg.calls)
	assert.True(t, repo.records["h1"].Reviewed)
}

// Package history serves the transaction history list and the post-purchase
// review flow.
package history

import (
	"fmt"

	historyRepo "parenthub/database/repository/history"
	ratingRepo "parenthub/database/repository/rating"
	"parenthub/models"
	"parenthub/utils"

	"go.uber.org/zap"
)

// Collections carrying an embedded {rating, reviewCount} aggregate, keyed by
// the history record's category.
var ratedCollections = map[string]string{
	models.CategoryShopping:     "products",
	models.CategorySitter:       "sitters",
	models.CategoryConsultation: "doctors",
	models.CategoryDaycare:      "daycares",
}

// Service lists a user's history and folds reviews into resource ratings.
type Service struct {
	History historyRepo.HistoryRepository
	Ratings ratingRepo.Aggregator
}

// ListByUser returns the user's transaction records.
func (s *Service) ListByUser(userID string) []models.HistoryTransaction {
	records, err := s.History.GetByUser(userID)
	if err != nil {
		utils.GetLogger().Warn("failed to list history", zap.String("userID", userID), zap.Error(err))
		return nil
	}
	return records
}

// SubmitReview rates the resource behind a history record with 1..5 stars and
// marks the record reviewed. The aggregate update is best effort: when it
// fails the review still completes and the failure is logged, so a record is
// never left reviewable after the user rated it.
func (s *Service) SubmitReview(userID, historyID string, stars int) error {
	if stars < 1 || stars > 5 {
		return fmt.Errorf("star value %d out of range", stars)
	}

	record, err := s.History.GetByID(historyID)
	if err != nil {
		return fmt.Errorf("history record not found: %w", err)
	}
	if record == nil {
		return fmt.Errorf("history record %s not found", historyID)
	}
	if record.UserID != userID {
		return fmt.Errorf("history record %s does not belong to this user", historyID)
	}
	if record.Reviewed {
		return fmt.Errorf("history record %s was already reviewed", historyID)
	}

	if collection, ok := ratedCollections[record.Category]; ok {
		if err := s.Ratings.SubmitRating(collection, record.ProductID, stars); err != nil {
			utils.GetLogger().Error("failed to fold review into rating",
				zap.String("historyID", historyID), zap.String("collection", collection),
				zap.String("resourceID", record.ProductID), zap.Error(err))
		}
	}

	if err := s.History.SetReviewed(historyID); err != nil {
		return fmt.Errorf("failed to mark record reviewed: %w", err)
	}
	return nil
}

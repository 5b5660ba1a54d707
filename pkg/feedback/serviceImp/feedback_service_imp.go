package serviceImp

import (
	"go.uber.org/zap"

	"raitha/entities"
	fbrepo "raitha/pkg/feedback/repository"
	predrepo "raitha/pkg/prediction/repository"
)

type FeedbackSvc struct {
	repoFb   fbrepo.FeedbackRepository
	repoPred predrepo.PredictionRepository
	log      *zap.SugaredLogger
}

func NewFeedbackService(repoFb fbrepo.FeedbackRepository, repoPred predrepo.PredictionRepository, log *zap.SugaredLogger) *FeedbackSvc {
	return &FeedbackSvc{repoFb: repoFb, repoPred: repoPred, log: log}
}

// Submit writes the feedback record and flips feedback_received on the
// referenced prediction. The two writes are not atomic and the prediction id
// is not verified to exist; the link is advisory.
func (s *FeedbackSvc) Submit(predictionID string, fb *entities.FeedbackRecord) (*entities.FeedbackRecord, error) {
	fb.PredictionID = predictionID
	if err := s.repoFb.Create(fb); err != nil {
		return nil, err
	}
	if err := s.repoPred.MarkFeedbackReceived(predictionID); err != nil {
		s.log.Warnw("mark feedback_received failed", "prediction_id", predictionID, "err", err)
	}
	return fb, nil
}

// Recent is the retraining export: most-recent-first, bounded.
func (s *FeedbackSvc) Recent(limit int) ([]entities.FeedbackRecord, error) {
	return s.repoFb.Recent(limit)
}

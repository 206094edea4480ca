package service

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"gitlab.com/vidpay-rewards/rewards_api/model"
)

// EnsureHierarchy derives and persists the ancestor edges of a user from the
// referred_by pointer chain. Traversal is bounded to three hops: A is the user's
// own referrer, B is A's referrer, C is B's. A chain shorter than three is a
// valid terminal state and yields fewer edges.
//
// The call is idempotent: existing edges are kept as they are and only the
// missing levels are inserted. A partially persisted chain from an earlier
// failure is completed by simply calling it again.
func (service *Service) EnsureHierarchy(userID uint64) ([]model.ReferralHierarchy, error) {
	user, err := service.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	existing, err := service.repo.GetHierarchyEdges(userID)
	if err != nil {
		return nil, err
	}
	if len(existing) == len(model.ReferralLevels) {
		return existing, nil
	}

	present := map[model.ReferralLevel]bool{}
	for i := range existing {
		present[existing[i].Level] = true
	}

	edges := existing
	ancestor := user.ReferredBy
	for _, level := range model.ReferralLevels {
		if ancestor == nil {
			break
		}
		referrerID := *ancestor

		if !present[level] {
			edge := model.ReferralHierarchy{
				UserID:     userID,
				ReferrerID: referrerID,
				Level:      level,
			}
			if err := service.repo.Conn.Create(&edge).Error; err != nil {
				if !isUniqueViolation(err) {
					return edges, err
				}
				// a concurrent builder won the race for this level; the stored
				// edge carries the same values since the chain is write-once
			}
			edges = append(edges, edge)
		}

		parent, err := service.repo.GetUserByID(referrerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// dangling referrer pointer terminates the chain
				log.Warn().
					Str("section", "service").
					Str("method", "EnsureHierarchy").
					Uint64("user_id", userID).
					Uint64("referrer_id", referrerID).
					Msg("Referrer record missing, chain truncated")
				break
			}
			return edges, err
		}
		ancestor = parent.ReferredBy
	}

	return edges, nil
}

package queries

import (
	"gitlab.com/vidpay-rewards/rewards_api/model"
)

// GetHierarchyEdges returns the persisted ancestor edges of a user, at most one
// per level, in A/B/C order
func (repo *Repo) GetHierarchyEdges(userID uint64) ([]model.ReferralHierarchy, error) {
	edges := make([]model.ReferralHierarchy, 0, len(model.ReferralLevels))
	db := repo.ConnReader.
		Where("user_id = ?", userID).
		Order("level ASC").
		Find(&edges)
	if db.Error != nil {
		return nil, db.Error
	}
	return edges, nil
}

// GetReferralTree resolves the persisted edges of a user into a tree keyed by level
func (repo *Repo) GetReferralTree(userID uint64) (*model.ReferralTree, error) {
	edges, err := repo.GetHierarchyEdges(userID)
	if err != nil {
		return nil, err
	}
	tree := model.ReferralTree{UserID: userID}
	for i := range edges {
		referrerID := edges[i].ReferrerID
		switch edges[i].Level {
		case model.ReferralLevelA:
			tree.A = &referrerID
		case model.ReferralLevelB:
			tree.B = &referrerID
		case model.ReferralLevelC:
			tree.C = &referrerID
		}
	}
	return &tree, nil
}

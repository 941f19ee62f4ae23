package officer

import (
	"context"

	id "tadipaar/pkg/domain"
)

// Store persists roster entries. Implementations return sentinel errors; the
// service layer translates them into domain errors.
type Store interface {
	Create(ctx context.Context, officer *Officer) error
	FindByID(ctx context.Context, officerID id.OfficerID) (*Officer, error)
	List(ctx context.Context) ([]*Officer, error)
	Delete(ctx context.Context, officerID id.OfficerID) error
}

package area

import (
	"context"

	id "tadipaar/pkg/domain"
)

// Store persists restricted areas. Implementations return sentinel errors;
// the service layer translates them into domain errors.
type Store interface {
	Create(ctx context.Context, area *RestrictedArea) error
	FindByID(ctx context.Context, areaID id.AreaID) (*RestrictedArea, error)
	List(ctx context.Context) ([]*RestrictedArea, error)
	Delete(ctx context.Context, areaID id.AreaID) error
}

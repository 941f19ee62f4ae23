package externee

import (
	"context"

	id "tadipaar/pkg/domain"
)

// Store persists externment records. Implementations return sentinel errors;
// the service layer translates them into domain errors.
type Store interface {
	Create(ctx context.Context, record *ExternmentRecord) error
	FindByID(ctx context.Context, recordID id.ExterneeID) (*ExternmentRecord, error)
	FindByIdentityNumber(ctx context.Context, identityNumber string) (*ExternmentRecord, error)
	ExistsByAreaID(ctx context.Context, areaID id.AreaID) (bool, error)
	List(ctx context.Context) ([]*ExternmentRecord, error)
	Delete(ctx context.Context, recordID id.ExterneeID) error
}

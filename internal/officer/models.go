// Package officer manages the roster of police officers attached to each
// station for externment supervision duty.
package officer

import (
	"strings"
	"time"

	dErrors "tadipaar/pkg/domain-errors"

	id "tadipaar/pkg/domain"
)

// Officer is one roster entry. BuckleNumber is the force-wide identifier and
// is unique across stations.
type Officer struct {
	ID            id.OfficerID `json:"id"`
	Name          string       `json:"name"`
	BuckleNumber  string       `json:"buckle_number"`
	Rank          string       `json:"rank"`
	PoliceStation string       `json:"police_station"`
	Mobile        string       `json:"mobile,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// New validates a roster entry.
func New(name, buckleNumber, rank, station, mobile string) (*Officer, error) {
	name = strings.TrimSpace(name)
	buckleNumber = strings.TrimSpace(buckleNumber)
	rank = strings.TrimSpace(rank)
	station = strings.TrimSpace(station)

	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	if buckleNumber == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "buckle number is required")
	}
	if rank == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "rank is required")
	}
	if station == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "police station is required")
	}

	return &Officer{
		ID:            id.NewOfficerID(),
		Name:          name,
		BuckleNumber:  buckleNumber,
		Rank:          rank,
		PoliceStation: station,
		Mobile:        strings.TrimSpace(mobile),
	}, nil
}

// OwningStation reports the station the officer is posted at.
func (o *Officer) OwningStation() string { return o.PoliceStation }

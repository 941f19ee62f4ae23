// Package seed loads demo fixtures: one account per role, two restricted
// areas, and an externment order bound to the demo subject. Meant for local
// development behind the SEED_DEMO_DATA flag, never for production.
package seed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	dErrors "tadipaar/pkg/domain-errors"
	"tadipaar/pkg/platform/sentinel"

	"tadipaar/internal/area"
	"tadipaar/internal/auth"
	"tadipaar/internal/externee"
	"tadipaar/internal/geofence"
	"tadipaar/internal/officer"
)

// Stores collects everything Demo writes to.
type Stores struct {
	Accounts  *auth.Service
	Areas     area.Store
	Externees externee.Store
	Officers  officer.Store
}

const demoPassword = "tadipaar-demo"

// Demo loads the fixtures. Idempotent: conflicts from a previous run are
// skipped, everything else fails the boot.
func Demo(ctx context.Context, stores Stores, logger *slog.Logger) error {
	accounts := []auth.CreateAccountInput{
		{Name: "Vikram Rathod", Email: "cp@demo.tadipaar.in", Password: demoPassword, Role: "CP"},
		{Name: "Anita Shinde", Email: "dcp@demo.tadipaar.in", Password: demoPassword, Role: "DCP", Zone: "Zone-2"},
		{Name: "Suresh Kale", Email: "acp@demo.tadipaar.in", Password: demoPassword, Role: "ACP", Station: "Wakad PS"},
		{Name: "Meena Patil", Email: "admin@demo.tadipaar.in", Password: demoPassword, Role: "STATION_ADMIN", Station: "Wakad PS"},
		{Name: "Dinesh Bhosale", Email: "psi@demo.tadipaar.in", Password: demoPassword, Role: "PSI", Station: "Wakad PS"},
		{Name: "Ravi Pawar", Email: "subject@demo.tadipaar.in", Password: demoPassword, Role: "CRIMINAL", IdentityNumber: "MH-EXT-2025-0042"},
	}
	for _, in := range accounts {
		if _, err := stores.Accounts.CreateAccount(ctx, in); err != nil && dErrors.CodeOf(err) != dErrors.CodeConflict {
			return err
		}
	}

	wakadMarket, err := area.New("Wakad Market", "Wakad PS", geofence.Point{Lat: 18.5993, Lon: 73.7625}, 500)
	if err != nil {
		return err
	}
	wakadMarket.CreatedAt = time.Now()
	if err := create(stores.Areas.Create(ctx, wakadMarket)); err != nil {
		return err
	}

	pimpriCourt, err := area.New("Pimpri Court Precinct", "Pimpri PS", geofence.Point{Lat: 18.6298, Lon: 73.7997}, 800)
	if err != nil {
		return err
	}
	pimpriCourt.CreatedAt = time.Now()
	if err := create(stores.Areas.Create(ctx, pimpriCourt)); err != nil {
		return err
	}

	now := time.Now()
	record, err := externee.New("Ravi Pawar", "MH-EXT-2025-0042", "Wakad PS",
		wakadMarket.ID, now, now.AddDate(0, 6, 0))
	if err != nil {
		return err
	}
	record.CreatedBy = "CP"
	record.CreatedAt = now
	if err := create(stores.Externees.Create(ctx, record)); err != nil {
		return err
	}

	constable, err := officer.New("S. R. Jadhav", "B-1001", "Head Constable", "Wakad PS", "+91 98220 00001")
	if err != nil {
		return err
	}
	constable.CreatedAt = now
	if err := create(stores.Officers.Create(ctx, constable)); err != nil {
		return err
	}

	logger.Info("demo fixtures loaded",
		"accounts", len(accounts),
		"subject", record.IdentityNumber,
	)
	return nil
}

// create tolerates re-runs against a persistent store.
func create(err error) error {
	if err == nil || errors.Is(err, sentinel.ErrConflict) {
		return nil
	}
	return err
}

// Package auth owns login accounts and session tokens.
//
// Accounts carry bcrypt hashes and sessions are signed JWTs whose claims
// feed the scope evaluator. This is not an identity provider.
package auth

import (
	"time"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/scope"
)

// Account is a login principal: an administrative officer or an externed
// subject. Zone/Station/IdentityNumber are the jurisdiction values copied
// into token claims at login.
type Account struct {
	ID             id.AccountID
	Name           string
	Email          string
	PasswordHash   []byte
	Role           scope.Role
	Zone           string
	Station        string
	IdentityNumber string
	CreatedAt      time.Time
}

// Actor projects the account onto the scope evaluator's view of a caller.
func (a *Account) Actor() *scope.Actor {
	return &scope.Actor{
		Role:           a.Role,
		Zone:           a.Zone,
		Station:        a.Station,
		IdentityNumber: a.IdentityNumber,
	}
}

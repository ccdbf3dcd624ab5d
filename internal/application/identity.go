package application

import "go.mongodb.org/mongo-driver/bson/primitive"

// LegacyIdentityToken is the credential a successful user login returns:
// the bare record identifier, with no server-side session behind it.
// Callers treat it as an ad hoc credential on subsequent requests. It is
// isolated here as a named policy so real session or token issuance can
// replace it without touching the rest of the contract.
type LegacyIdentityToken struct {
	UserID primitive.ObjectID
}

func (t LegacyIdentityToken) String() string {
	return t.UserID.Hex()
}

package structs

import (
	"time"

	"github.com/google/uuid"
)

type AuthClaims struct {
	Sub  uuid.UUID
	Name string
	Role string
	Iat  time.Time
	Exp  time.Time
	Jti  uuid.UUID
}

package api

import (
	"time"

	"github.com/limbo/forgetmenot/pkg/entity"
	jwtservice "github.com/limbo/forgetmenot/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, *jwtservice.Claims, error)
	ParseToken(tokenString string) (*jwtservice.Claims, error)
	TTL() time.Duration
}

package api

import (
	"github.com/limbo/tasktracker/pkg/entity"
	jwtservice "github.com/limbo/tasktracker/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*jwtservice.JWTClaims, error)
}

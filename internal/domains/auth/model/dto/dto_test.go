package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"madison/infras/jwt"
	"madison/internal/domains/auth/model/dto"
	"madison/shared/constant"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	name := "Paul Essomba"
	req := dto.RegisterRequest{
		Email:    "paul@madison-hotel.cm",
		Password: "motdepasse",
		FullName: &name,
	}

	user := req.ToUserModel(constant.ContextGuest, "hashed-password")

	assert.NotEmpty(t, user.ID, "expected ID to be generated")
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, constant.RoleReceptionist, user.Level)
	assert.Equal(t, req.FullName, user.FullName)
	assert.False(t, user.IsVerified, "self-registered accounts start unverified")
	assert.True(t, user.Active)
	assert.Equal(t, constant.ContextGuest, user.CreatedBy)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}

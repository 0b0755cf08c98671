package auth_test

import (
	"testing"
	"time"

	"github.com/cavalaria/backend/internal/auth"
	"github.com/cavalaria/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)

	user := models.User{
		Username: "sergeant",
		Role:     models.RoleOperator,
	}
	user.ID = uuid.New()

	token, err := issuer.Issue(user)
	require.Nil(t, err)

	claims, err := issuer.Verify(token)
	require.Nil(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "sergeant", claims.Username)
	assert.Equal(t, models.RoleOperator, claims.Role)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := auth.NewIssuer("secret-one", time.Hour).Issue(models.User{Username: "x"})
	require.Nil(t, err)

	_, err = auth.NewIssuer("secret-two", time.Hour).Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestVerifyExpired(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(models.User{Username: "x"})
	require.Nil(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := auth.NewIssuer("test-secret", time.Hour).Verify("not a token")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

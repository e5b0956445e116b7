package identity_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAndGetUser(t *testing.T) {
	client := setupIdentityContainer(t)
	ctx := context.Background()

	created, err := client.CreateUser(ctx, "Alice Example", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Alice Example", created.Name)

	// Seeded accounts share an email namespace with sign-ups.
	_, err = client.SignUp(ctx, "alice@example.com", testPassword)
	requireAPIError(t, err, http.StatusConflict)

	// Reading a single user needs a token from any signed-in identity.
	mustSignUp(t, client, "reader@example.com")
	signin := mustSignIn(t, client, "reader@example.com")

	fetched, err := client.GetUser(ctx, created.ID, signin.Token)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "Alice Example", fetched.Name)

	_, err = client.GetUser(ctx, "01HZZZZZZZZZZZZZZZZZZZZZZZ", signin.Token)
	apiErr := requireAPIError(t, err, http.StatusNotFound)
	require.Equal(t, "User not found", apiErr.Message)
}

func TestListUsersPagination(t *testing.T) {
	client := setupIdentityContainer(t)
	ctx := context.Background()

	for i := range 15 {
		_, err := client.CreateUser(ctx, fmt.Sprintf("User %02d", i), fmt.Sprintf("user%02d@example.com", i))
		require.NoError(t, err)
	}

	first, err := client.ListUsers(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, first.Data, 10)
	require.EqualValues(t, 15, first.Total)
	require.Equal(t, 1, first.Page)
	require.Equal(t, 10, first.Limit)
	require.Equal(t, 2, first.TotalPages)

	// Newest first: the last account created leads the first page.
	require.Equal(t, "user14@example.com", first.Data[0].Email)

	second, err := client.ListUsers(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, second.Data, 5)
	require.Equal(t, "user00@example.com", second.Data[4].Email)

	_, err = client.ListUsers(ctx, 1, 101)
	apiErr := requireAPIError(t, err, http.StatusBadRequest)
	require.Equal(t, "Validation failed", apiErr.Message)
}

func TestCreateUserValidation(t *testing.T) {
	client := setupIdentityContainer(t)
	ctx := context.Background()

	_, err := client.CreateUser(ctx, "", "alice@example.com")
	apiErr := requireAPIError(t, err, http.StatusBadRequest)
	require.Len(t, apiErr.Errors, 1)
	require.Equal(t, "name", apiErr.Errors[0].Field)
}

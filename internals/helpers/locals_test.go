package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestGetGymCodeFromLocals_QueryParamCannotOverrideContext(t *testing.T) {
	app := fiber.New()

	var gotCode string
	var gotErr error
	app.Get("/scoped", func(c *fiber.Ctx) error {
		c.Locals(LocalsGymCode, "gym_a")
		gotCode, gotErr = GetGymCodeFromLocals(c)
		return c.SendStatus(fiber.StatusOK)
	})

	// The raw query value points at another tenant; only the value the
	// middleware validated may come back.
	_, err := app.Test(httptest.NewRequest("GET", "/scoped?gymCode=gym_b", nil))
	require.NoError(t, err)
	require.NoError(t, gotErr)
	require.Equal(t, "gym_a", gotCode)
}

func TestGetGymCodeFromLocals_MissingContextFailsClosed(t *testing.T) {
	app := fiber.New()

	var gotErr error
	app.Get("/scoped", func(c *fiber.Ctx) error {
		_, gotErr = GetGymCodeFromLocals(c)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/scoped?gymCode=gym_b", nil))
	require.NoError(t, err)
	require.Error(t, gotErr)

	var fe *fiber.Error
	require.ErrorAs(t, gotErr, &fe)
	require.Equal(t, fiber.StatusBadRequest, fe.Code)
}

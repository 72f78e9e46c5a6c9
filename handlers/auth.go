package handlers

import (
	"recall/middleware"
	"recall/templates/pages"

	"github.com/labstack/echo/v4"
)

// AuthHandler renders the sign-in page, or the sign-up variant with ?mode=signup.
// There is no POST counterpart; the form never reaches the server.
func AuthHandler(c echo.Context) error {
	signUp := c.QueryParam("mode") == "signup"
	title := "Sign In | Recall"
	if signUp {
		title = "Sign Up | Recall"
	}

	csrfToken := middleware.GetCSRFToken(c)
	component := pages.Auth(c.Request().Context(), title, csrfToken, signUp)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

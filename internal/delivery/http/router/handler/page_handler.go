package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"epro/internal/delivery/http/session"
	"epro/internal/domain/entity"
	"epro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// loginPageTemplate is the shared shell for every section's login page. The
// brand settings drive the colors so the whole portal re-skins from one row.
var loginPageTemplate = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.PortalName}} – {{.Section}} login</title>
<style>
body { font-family: sans-serif; background: #f9fafb; color: {{.PrimaryColor}}; }
.card { max-width: 360px; margin: 10vh auto; padding: 2rem; background: #fff; border-radius: 8px; box-shadow: 0 1px 4px rgba(0,0,0,.1); }
button { background: {{.AccentColor}}; color: #fff; border: 0; padding: .6rem 1.2rem; border-radius: 4px; cursor: pointer; }
input { width: 100%; padding: .5rem; margin: .3rem 0 1rem; box-sizing: border-box; }
{{if .ErrorMessage}}.error { color: #b91c1c; margin-bottom: 1rem; }{{end}}
</style>
</head>
<body>
<div class="card">
{{if .LogoPath}}<img src="{{.LogoPath}}" alt="{{.PortalName}}" height="48">{{end}}
<h1>{{.PortalName}}</h1>
<h2>{{.Section}} login</h2>
{{if .ErrorMessage}}<p class="error">{{.ErrorMessage}}</p>{{end}}
<form method="post" action="{{.Action}}">
<label>Email<input type="email" name="email" required></label>
<label>Password<input type="password" name="password" required></label>
<button type="submit">Sign in</button>
</form>
<p><a href="mailto:{{.SupportEmail}}">Contact support</a></p>
</div>
</body>
</html>`))

var dashboardPageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.PortalName}} – {{.Section}}</title>
<style>
body { font-family: sans-serif; background: #f9fafb; color: {{.PrimaryColor}}; }
header { background: {{.AccentColor}}; color: #fff; padding: 1rem 2rem; }
main { padding: 2rem; }
</style>
</head>
<body>
<header><strong>{{.PortalName}}</strong> – {{.Section}} dashboard</header>
<main>
<p>Signed in as {{.FullName}}.</p>
<form method="post" action="/logout"><button type="submit">Sign out</button></form>
</main>
</body>
</html>`))

type pageData struct {
	PortalName   string
	PrimaryColor string
	AccentColor  string
	LogoPath     string
	SupportEmail string
	Section      string
	Action       string
	ErrorMessage string
	FullName     string
}

// sectionTitles maps roles to the human heading on their pages.
var sectionTitles = map[entity.Role]string{
	entity.RoleStudent:        "Student",
	entity.RoleProgramManager: "Program manager",
	entity.RoleAdmin:          "Administrator",
}

// PageHandler serves the server-rendered login and dashboard pages. Pages use
// the cookie session; the JSON API keeps using bearer tokens.
type PageHandler struct {
	accounts usecase.AccountUsecase
	branding usecase.BrandingUsecase
	sessions *session.Manager
	logger   *slog.Logger
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler(accounts usecase.AccountUsecase, branding usecase.BrandingUsecase, sessions *session.Manager, logger *slog.Logger) *PageHandler {
	return &PageHandler{accounts: accounts, branding: branding, sessions: sessions, logger: logger}
}

func (h *PageHandler) brandedData(c echo.Context, role entity.Role) pageData {
	data := pageData{
		Section: sectionTitles[role],
		Action:  role.LoginPath(),
	}

	settings, err := h.branding.Get(c.Request().Context())
	if err != nil {
		// Pages still render without branding; fall back to the defaults.
		settings = entity.DefaultBrandSettings()
	}

	data.PortalName = settings.PortalName
	data.PrimaryColor = settings.PrimaryColor
	data.AccentColor = settings.AccentColor
	data.LogoPath = settings.LogoPath
	data.SupportEmail = settings.SupportEmail

	return data
}

// SectionRedirect sends a bare section prefix to the section's login page.
func (h *PageHandler) SectionRedirect(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, role.LoginPath())
	}
}

// LoginPage renders the section's login form.
func (h *PageHandler) LoginPage(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		// A browser that is already signed in skips the form.
		if profileID, _, ok := h.sessions.Login(c); ok {
			if resolved, err := h.accounts.ResolveRole(c.Request().Context(), profileID); err == nil {
				return c.Redirect(http.StatusFound, resolved.Role.DashboardPath())
			}
			_ = h.sessions.Clear(c)
		}

		return h.renderLogin(c, role, "")
	}
}

// LoginSubmit handles the login form post and opens the cookie session.
func (h *PageHandler) LoginSubmit(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.FormValue("email")
		password := c.FormValue("password")

		output, err := h.accounts.Login(c.Request().Context(), usecase.LoginInput{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return h.renderLogin(c, role, "Sign-in failed. Check your email and password.")
		}

		if err := h.sessions.SetLogin(c, output.Profile.ID, output.Profile.Role); err != nil {
			return errors.Wrap(err, "failed to open page session")
		}

		// Whatever section the form was on, the browser lands on its own
		// dashboard; the page guard sorts out mismatches from here.
		return c.Redirect(http.StatusFound, output.Profile.Role.DashboardPath())
	}
}

// Dashboard renders the section's dashboard shell.
func (h *PageHandler) Dashboard(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		data := h.brandedData(c, role)

		if profileID, _, ok := h.sessions.Login(c); ok {
			if profile, err := h.accounts.GetProfile(c.Request().Context(), profileID); err == nil {
				data.FullName = profile.FullName
			}
		}

		var buf bytes.Buffer
		if err := dashboardPageTemplate.Execute(&buf, data); err != nil {
			return errors.Wrap(err, "failed to render dashboard page")
		}

		return c.HTML(http.StatusOK, buf.String())
	}
}

// Logout drops the cookie session and returns the browser to the student login.
func (h *PageHandler) Logout(c echo.Context) error {
	_, role, ok := h.sessions.Login(c)
	if !ok {
		role = entity.RoleStudent
	}

	if err := h.sessions.Clear(c); err != nil {
		h.logger.Warn("Failed to clear page session", slog.Any("error", err))
	}

	return c.Redirect(http.StatusFound, role.LoginPath())
}

func (h *PageHandler) renderLogin(c echo.Context, role entity.Role, errorMessage string) error {
	data := h.brandedData(c, role)
	data.ErrorMessage = errorMessage

	var buf bytes.Buffer
	if err := loginPageTemplate.Execute(&buf, data); err != nil {
		return errors.Wrap(err, "failed to render login page")
	}

	status := http.StatusOK
	if errorMessage != "" {
		status = http.StatusUnauthorized
	}

	return c.HTML(status, buf.String())
}

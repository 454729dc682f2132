package main

import (
	"fmt"
	"html"
	"strings"

	"github.com/trophycase/trophycase/internal/theme"
)

// missingUsernamePage is served when no username is supplied and none can be
// derived from the configured token. The request path is caller-controlled and
// must be entity-encoded before interpolation.
func missingUsernamePage(basePath string) string {
	themes := strings.Join(theme.Names(), ", ")
	basePath = html.EscapeString(basePath)

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>GitHub Trophy Case</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; background: #f4f4f4; color: #222; }
    section { width: min(860px, 92vw); margin: 24px auto; }
    .card { background: #fff; border-radius: 8px; padding: 20px; margin-bottom: 16px; box-shadow: 0 4px 24px rgba(0, 0, 0, 0.08); }
    code { background: #f0f0f0; padding: 2px 6px; border-radius: 4px; }
    input { width: 100%%; box-sizing: border-box; padding: 10px 12px; margin: 8px 0 16px; border: 1px solid #d0d7de; border-radius: 6px; }
    button { padding: 10px 14px; border: none; border-radius: 6px; background: #24292f; color: #fff; cursor: pointer; }
    button:hover { background: #3d444d; }
    .muted { color: #57606a; font-size: 14px; }
  </style>
</head>
<body>
  <section>
    <div class="card">
      <h2>&quot;username&quot; is a required query parameter</h2>
      <p>URL example: <code>%[1]s?username=USERNAME</code></p>
      <p class="muted">Available themes: %[2]s</p>
    </div>
    <div class="card">
      <h2>Generate Trophies</h2>
      <form action="%[1]s" method="get">
        <label for="username">GitHub Username</label>
        <input id="username" name="username" type="text" placeholder="Ex. octocat" required />

        <label for="theme">Theme (optional)</label>
        <input id="theme" name="theme" type="text" placeholder="Ex. onedark" value="default" />

        <button type="submit">Get Trophies</button>
      </form>
    </div>
  </section>
</body>
</html>`, basePath, themes)
}

// errorPage wraps an error status in a minimal HTML body. Messages can carry
// caller-supplied values (an unknown theme name, for one) and are
// entity-encoded before interpolation.
func errorPage(status int, message string) string {
	message = html.EscapeString(message)
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>GitHub Trophy Case</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; background: #f4f4f4; color: #222; }
    section { width: min(760px, 92vw); margin: 48px auto; }
    .card { background: #fff; border-radius: 8px; padding: 24px; box-shadow: 0 4px 24px rgba(0, 0, 0, 0.08); }
  </style>
</head>
<body>
  <section>
    <div class="card">
      <h1>%d</h1>
      <p>%s</p>
    </div>
  </section>
</body>
</html>`, status, message)
}

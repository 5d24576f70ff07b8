// Package shell serves the console's views over local HTTP.
//
// Every route sits behind the route guard, so a browser or curl session sees
// the same redirects the REPL prints: protected views bounce to /login with
// ?from=, the two-factor view is reachable only while a login waits for its
// code, and nothing renders while the session is still being restored.
//
// Routes:
//
//	GET    /login                            login view
//	POST   /login                            {"username","password"}
//	GET    /2fa-verify                       code entry view
//	POST   /2fa-verify                       {"code"}
//	DELETE /2fa-verify                       cancel the pending login
//	POST   /logout
//	GET    /dashboard                        business KPIs
//	GET    /analytics/products/top-revenue   ?limit=N
//
// Views are JSON. Successful submissions answer with "next", the location the
// client should navigate to.
package shell

// Package cli provides the interactive admin console.
//
// On start the console restores the previous session from stored tokens and
// then reads commands line by line. Login is a two-step flow: credentials
// first, then the 6-digit code the account receives over Telegram.
//
// Commands:
//   - login, verify [code], cancel, logout, status
//   - kpis, top [n]
//   - open <route>: navigate through the route guard
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

// Package cli provides the interactive multitool command-line client.
//
// It wires configuration, the local token database, the REST client, the
// session and one service per feature, then either runs a single command or
// an interactive REPL over the same command table.
//
// Key features:
//   - Register / Login / Logout, with the session restored from stored tokens
//   - Document and HR document Q&A, chat, video-to-audio
//   - Dynamic prompts, resume matching, image generation
//   - Subscriptions and usage, plus admin-only CRM and master settings
//
// Commands other than help, register, login and exit require a logged-in
// user. Errors are printed and never end the REPL.
package cli

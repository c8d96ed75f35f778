// Package notebot is the composition root of a per-user note-taking chat bot.
//
// It connects the domain (pkg/core: notes, the pending-clear tracker and the
// command router) with the infrastructure adapters (pkg/adapters/fs for the
// JSON note document and pkg/adapters/telegram for the chat transport).
//
// Each user owns an ordered list of short text notes. Notes are added by
// sending any text, deleted by sending their 1-based number, listed, exported
// to a shared text file, or cleared all at once after an explicit
// confirmation. The whole store is one JSON object keyed by user id, loaded
// on every read and rewritten on every change.
//
// Usage:
//
//	router, err := notebot.NewRouter("./data",
//		notebot.WithLogger(logger),
//	)
//
//	reply, err := router.Handle(ctx, core.Message{UserID: "42", Text: "Купить молоко"})
package notebot

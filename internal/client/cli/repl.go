package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Stalls(ctx context.Context) error
	Auction(ctx context.Context) error
	PreRegister(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Documents(ctx context.Context) error
	SubmitDocument(ctx context.Context) error
	DocumentLink(ctx context.Context) error
	Messages(ctx context.Context, counterpart string) error
	SendMessage(ctx context.Context, counterpart string) error
	ClearChat(ctx context.Context, counterpart string) error
	Notifications(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("stallkeeper %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, stalls, auction, preregister, profile, editprofile, documents, submit, link, messages <name>, send <name>, clearchat <name>, notifications, logout, exit")
			} else {
				printlnFn("Available commands: login, register, auction, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "stalls":
			_ = a.Stalls(ctx)

		case "auction":
			_ = a.Auction(ctx)

		case "preregister":
			_ = a.PreRegister(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "documents":
			_ = a.Documents(ctx)

		case "submit":
			_ = a.SubmitDocument(ctx)

		case "link":
			_ = a.DocumentLink(ctx)

		case "messages":
			if len(args) == 0 {
				printlnFn("Usage: messages <name>")
				continue
			}
			_ = a.Messages(ctx, strings.Join(args, " "))

		case "send":
			if len(args) == 0 {
				printlnFn("Usage: send <name>")
				continue
			}
			_ = a.SendMessage(ctx, strings.Join(args, " "))

		case "clearchat":
			if len(args) == 0 {
				printlnFn("Usage: clearchat <name>")
				continue
			}
			_ = a.ClearChat(ctx, strings.Join(args, " "))

		case "notifications":
			_ = a.Notifications(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

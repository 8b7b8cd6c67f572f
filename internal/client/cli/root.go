package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Root greets the user and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Stallkeeper (type 'help' for commands)")
	if id, ok := a.session.Current(); ok {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", id.FullName)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mepo/stallkeeper/internal/common"
)

// Documents prints the permit checklist with submission dates.
func (a *App) Documents(ctx context.Context) error {
	lctx, cancel := a.opCtx(ctx)
	defer cancel()
	list, err := a.documents.List(lctx)
	if errors.Is(err, common.ErrNotAuthenticated) {
		fmt.Fprintln(a.out, "Please log in to see your documents.")
		return err
	}
	if err != nil {
		fmt.Fprintln(a.out, "Could not load your documents, please try again later.")
		return err
	}

	fmt.Fprintln(a.out, "Required documents:")
	for _, doc := range list {
		if doc.SubmittedAt != nil {
			fmt.Fprintf(a.out, "  [x] %s (submitted %s)\n", doc.Name, doc.SubmittedAt.Format("2006-01-02"))
		} else {
			fmt.Fprintf(a.out, "  [ ] %s\n", doc.Name)
		}
	}
	return nil
}

// SubmitDocument uploads a permit image from a local file path.
func (a *App) SubmitDocument(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Document name (as shown in the checklist)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	path, err := GetSimpleText(a.reader, "Path to the image file", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	sctx, cancel := a.opCtx(ctx)
	defer cancel()
	doc, err := a.documents.Submit(sctx, name, path)
	switch {
	case errors.Is(err, common.ErrNotAuthenticated):
		fmt.Fprintln(a.out, "Please log in to submit documents.")
		return err
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintf(a.out, "%v\n", err)
		return err
	case err != nil:
		fmt.Fprintln(a.out, "Submission failed, please try again later.")
		return err
	}

	fmt.Fprintf(a.out, "Submitted %s on %s.\n", doc.Name, doc.SubmittedAt.Format("2006-01-02"))
	return nil
}

// DocumentLink prints a time-limited viewing URL for a submitted document.
func (a *App) DocumentLink(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Document name (as shown in the checklist)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	lctx, cancel := a.opCtx(ctx)
	defer cancel()
	url, err := a.documents.Link(lctx, name)
	switch {
	case errors.Is(err, common.ErrNotAuthenticated):
		fmt.Fprintln(a.out, "Please log in to view documents.")
		return err
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, "No submission on record for that document.")
		return err
	case err != nil:
		fmt.Fprintln(a.out, "Could not generate a link, please try again later.")
		return err
	}

	fmt.Fprintln(a.out, url)
	return nil
}

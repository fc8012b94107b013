package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/portfolio"
)

// MismatchError reports a verification whose DOM state differs from the
// expected content.
type MismatchError struct {
	What    string
	Locator string // empty for page-level checks
	Want    any
	Got     any
	Diff    string // set for list checks, (-want +got)
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	b.WriteString(e.What)
	if e.Locator != "" {
		fmt.Fprintf(&b, " (%s)", e.Locator)
	}
	if e.Diff != "" {
		fmt.Fprintf(&b, " mismatch (-want +got):\n%s", e.Diff)
		return b.String()
	}
	fmt.Fprintf(&b, ": want %q, got %q", e.Want, e.Got)
	return b.String()
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// expectText compares loc's text to want with whitespace collapsed, the way
// a rendered label reads.
func (b *Base) expectText(ctx context.Context, what string, loc browser.Locator, want string) error {
	got, err := b.session.TextContent(ctx, loc)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if normalizeSpace(got) != normalizeSpace(want) {
		return &MismatchError{What: what, Locator: loc.String(), Want: want, Got: got}
	}
	return nil
}

// expectTextContent compares loc's raw textContent to want exactly.
func (b *Base) expectTextContent(ctx context.Context, what string, loc browser.Locator, want string) error {
	got, err := b.session.TextContent(ctx, loc)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if got != want {
		return &MismatchError{What: what, Locator: loc.String(), Want: want, Got: got}
	}
	return nil
}

// expectTexts compares every match of loc, in order, to want.
func (b *Base) expectTexts(ctx context.Context, what string, loc browser.Locator, want []string) error {
	if err := b.session.Wait(ctx, loc); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	got, err := b.session.AllTextContents(ctx, loc)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	for i := range got {
		got[i] = normalizeSpace(got[i])
	}
	if diff := cmp.Diff(want, got); diff != "" {
		return &MismatchError{What: what, Locator: loc.String(), Want: want, Got: got, Diff: diff}
	}
	return nil
}

func (b *Base) expectAttribute(ctx context.Context, what string, loc browser.Locator, name, want string) error {
	got, ok, err := b.session.Attribute(ctx, loc, name)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if !ok {
		return &MismatchError{What: what + " " + name, Locator: loc.String(), Want: want, Got: "<no attribute>"}
	}
	if got != want {
		return &MismatchError{What: what + " " + name, Locator: loc.String(), Want: want, Got: got}
	}
	return nil
}

// expectClass compares the full class attribute, ignoring spacing between
// class names.
func (b *Base) expectClass(ctx context.Context, what string, loc browser.Locator, want string) error {
	got, _, err := b.session.Attribute(ctx, loc, "class")
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if normalizeSpace(got) != normalizeSpace(want) {
		return &MismatchError{What: what + " class", Locator: loc.String(), Want: want, Got: got}
	}
	return nil
}

// expectImage checks the src, alt and class of an <img>.
func (b *Base) expectImage(ctx context.Context, what string, loc browser.Locator, want portfolio.Image) error {
	if err := b.expectAttribute(ctx, what, loc, "src", want.Src); err != nil {
		return err
	}
	if err := b.expectAttribute(ctx, what, loc, "alt", want.Alt); err != nil {
		return err
	}
	return b.expectClass(ctx, what, loc, want.Class)
}

func (b *Base) expectVisible(ctx context.Context, what string, loc browser.Locator) error {
	if err := b.session.Wait(ctx, loc); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	visible, err := b.session.Visible(ctx, loc)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if !visible {
		return &MismatchError{What: what, Locator: loc.String(), Want: "visible", Got: "hidden"}
	}
	return nil
}

// expectHidden polls until loc is absent or not visible, failing once
// timeout has elapsed.
func (b *Base) expectHidden(ctx context.Context, what string, loc browser.Locator, timeout time.Duration) error {
	deadline := b.clock.Now().Add(timeout)
	for {
		visible, err := b.session.Visible(ctx, loc)
		if err != nil {
			return fmt.Errorf("%s: %w", what, err)
		}
		if !visible {
			return nil
		}
		if !b.clock.Now().Before(deadline) {
			return &MismatchError{What: what, Locator: loc.String(), Want: "hidden", Got: "visible"}
		}
		if err := b.clock.Sleep(ctx, hiddenPollInterval); err != nil {
			return err
		}
	}
}

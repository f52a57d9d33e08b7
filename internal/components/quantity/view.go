package quantity

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Text returns the heading line, e.g. "Number of cakes - 1000". Digits follow
// the locale's numbering system but are never grouped.
func Text(p Props) string {
	return message.NewPrinter(p.Locale).Sprintf("Number of cakes - %v",
		number.Decimal(p.Quantity, number.NoSeparator()))
}

// View renders the quantity heading and the buy button. The button is a
// plain form post so the page works without scripts; the live script
// intercepts the submit and sends the handler name over the websocket.
func View(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := io.WriteString(w,
			`<div class="quantity-display" id="quantity-display">`+
				`<h2>`+templ.EscapeString(Text(p))+`</h2>`+
				`<form method="post" action="`+templ.EscapeString(string(templ.URL(p.ActionURL)))+`">`+
				`<button type="submit" name="handler" value="`+HandlerIncrement+`">`+templ.EscapeString(p.Label)+`</button>`+
				`</form>`+
				`</div>`)
		return err
	})
}

package handlers

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// rootID is the element the live script swaps pushed fragments into.
const rootID = "component-root"

// liveScript connects to the websocket named by the root's data-live-url,
// swaps pushed renders into the root and turns button submits into handler
// messages while the socket is open.
const liveScript = `<script>(function(){` +
	`var root=document.getElementById("` + rootID + `");` +
	`var proto=location.protocol==="https:"?"wss:":"ws:";` +
	`var ws=new WebSocket(proto+"//"+location.host+root.dataset.liveUrl);` +
	`ws.onmessage=function(e){var m=JSON.parse(e.data);if(m.type==="render"){root.innerHTML=m.html;}};` +
	`root.addEventListener("submit",function(e){if(ws.readyState!==1){return;}e.preventDefault();` +
	`var b=e.submitter;ws.send(JSON.stringify({handler:b?b.value:""}));});` +
	`})();</script>`

// Page wraps body in the HTML document served at /.
func Page(opts PageOptions, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="`+templ.EscapeString(opts.Lang)+`">`+
			`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(opts.Title)+`</title></head><body>`); err != nil {
			return err
		}

		root := `<main id="` + rootID + `"`
		if opts.LiveURL != "" {
			root += ` data-live-url="` + templ.EscapeString(opts.LiveURL) + `"`
		}
		if _, err := io.WriteString(w, root+">"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</main>"); err != nil {
			return err
		}

		if opts.LiveURL != "" {
			if _, err := io.WriteString(w, liveScript); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

//go:build js && wasm

// Command spywasm runs the scroll-spy tracker in the browser. Build it with
//
//	GOOS=js GOARCH=wasm go build -o static/spy.wasm ./cmd/spywasm
//
// and copy $(go env GOROOT)/lib/wasm/wasm_exec.js next to it. The page lists
// its sections in <body data-sections> and the decision line offset in
// <body data-focus-offset>; nav controls carry data-nav="<section id>".
package main

import (
	"log/slog"
	"strconv"
	"strings"
	"syscall/js"

	"github.com/zmajumder/portfolio/internal/scrollspy"
)

func main() {
	doc := newDOM()
	body := doc.document.Get("body")

	ids := strings.Split(body.Get("dataset").Get("sections").String(), ",")
	focus, err := strconv.ParseFloat(body.Get("dataset").Get("focusOffset").String(), 64)
	if err != nil {
		focus = 80
	}

	tracker, err := scrollspy.New(scrollspy.Config{SectionIDs: ids, FocusOffset: focus})
	if err != nil {
		slog.Error("scrollspy disabled", "err", err)
		return
	}

	unsub := tracker.Subscribe(doc.highlight)
	detach := tracker.Attach(doc, doc)
	doc.highlight(tracker.Active())
	releaseClicks := doc.bindNavClicks()

	doc.window.Call("addEventListener", "pagehide", js.FuncOf(func(this js.Value, args []js.Value) any {
		releaseClicks()
		detach()
		unsub()
		return nil
	}), map[string]any{"once": true})

	// Keep the callbacks alive.
	select {}
}

// Package ui holds the state behind the interactive registration page: theme,
// counter widget, FAQ accordion, tabs and per-field validation feedback.
//
// Every piece of state is an explicit value owned by the caller. Nothing in
// the package is global and nothing registers callbacks. A host (terminal
// UI, template renderer, test) feeds events into Page.Dispatch and renders
// the returned FieldState values.
//
// Values in this package are not safe for concurrent mutation; a Page is
// meant to be owned by a single interaction loop.
//
//	page, err := ui.NewPage(registration.Form(), ui.WithThemeStore(store))
//	if err != nil {
//	    return err
//	}
//	view, err := page.Dispatch(ui.Event{Kind: ui.EventInput, Field: "email", Value: "a@b.co"})
//	if err != nil {
//	    return err
//	}
//	for _, st := range view.Fields {
//	    fmt.Println(st.Field, st.Class, st.ErrorText)
//	}
//
// PageComponent renders the whole page as a templ.Component, so the same
// state can be written as HTML to any io.Writer:
//
//	err = ui.PageComponent(page).Render(ctx, os.Stdout)
package ui

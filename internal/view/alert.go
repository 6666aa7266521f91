package view

import (
	"errors"
	"fmt"
	"strings"

	"internhub/internal/client"
	"internhub/internal/form"
	"internhub/internal/portal"
)

// Alert is the error banner. It shows the server's message when there is one.
func Alert(styles Styles, err error) string {
	if err == nil {
		return ""
	}
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		return styles.Error.Render("! "+verr.Error()) + "\n"
	}
	return styles.Error.Render("! "+client.UserMessage(err)) + "\n"
}

func Info(styles Styles, format string, args ...any) string {
	return styles.Info.Render(fmt.Sprintf(format, args...)) + "\n"
}

// Footer summarises paging and warns that search is limited to the page.
func Footer(styles Styles, p portal.Pagination, shown int, search string) string {
	var sb strings.Builder
	pages := max(p.TotalPages, 1)
	sb.WriteString(styles.Muted.Render(fmt.Sprintf("page %d of %d (%d total)", max(p.Page, 1), pages, p.Total)))
	if search != "" {
		sb.WriteString(styles.Muted.Render(fmt.Sprintf(" - %d match %q on this page; search covers this page only", shown, search)))
	}
	sb.WriteString("\n")
	return sb.String()
}

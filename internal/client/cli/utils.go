package cli

import (
	"strconv"

	"github.com/sam-ezra/todo/internal/client/i18n"
)

// printErr reports a failed command, preferring the view model's translated
// message when one was recorded.
func (a *App) printErr(err error) {
	if key := a.vm.ErrKey(); key != "" {
		printlnFn(i18n.T(a.lang, key) + ": " + err.Error())
		return
	}
	printlnFn("Error:", err.Error())
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil && id > 0
}

func parseIndex(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil && n > 0
}

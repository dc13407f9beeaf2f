package templates

import (
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// markup writes HTML pieces and keeps the first write error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// flag writes a boolean attribute when on.
func (m *markup) flag(name string, on bool) {
	if on {
		m.raw(" " + name)
	}
}

func translateX(percent int) string {
	return "transform: translateX(" + strconv.Itoa(percent) + "%);"
}

package repl

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/gocalc/internal/session"
)

// Styles decorates the calculator dialogue. The zero value renders plain text.
type Styles struct {
	// Title for the welcome banner
	Title lipgloss.Style
	// Dim for prompts and the operator menu
	Dim lipgloss.Style
	// Result for equations and recalled values
	Result lipgloss.Style
	// Error for recoverable failures
	Error lipgloss.Style
	// Label for base and unit labels
	Label lipgloss.Style
}

// NewStyles builds the colored styles on renderer r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")),
		Dim: r.NewStyle().
			Foreground(lipgloss.Color("240")),
		Result: r.NewStyle().
			Foreground(lipgloss.Color("42")),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("196")),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true),
	}
}

var menu = []string{
	"[+]  [-]  [*]  [/]  [%]  [^2]  [^x]  [sqrt]  [cbrt]  [!]",
	"[sin]  [cos]  [tan]  [sinh]  [cosh]  [tanh]  [asin]  [acos]  [atan]",
	"[changebase]  [binary]  [octal]  [hex]  [changeunits]  [radians]  [degrees]",
	"[theta]  [inverse]  [invertsign]  [gcd]  [lcm]",
}

// FormatBanner renders the welcome line
func FormatBanner(w io.Writer, st Styles) {
	fmt.Fprintln(w, st.Title.Render("TIME TO CALCULATE!"))
	fmt.Fprintln(w)
}

// FormatMenu renders the operator menu shown before each operator prompt
func FormatMenu(w io.Writer, st Styles) {
	fmt.Fprintln(w)
	for _, line := range menu {
		fmt.Fprintln(w, st.Dim.Render(line))
	}
	fmt.Fprintln(w)
}

// FormatEquation renders a computed equation preceded by a blank line
func FormatEquation(w io.Writer, st Styles, equation string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Result.Render(equation))
}

// FormatValue renders a bare value such as a recalled memory
func FormatValue(w io.Writer, st Styles, value string) {
	fmt.Fprintln(w, st.Result.Render(value))
}

// FormatMessage renders an informational line
func FormatMessage(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}

// FormatError renders a recoverable error line
func FormatError(w io.Writer, st Styles, msg string) {
	fmt.Fprintln(w, st.Error.Render(msg))
}

// FormatBase renders the display after a base change, e.g. "Binary: 101"
func FormatBase(w io.Writer, st Styles, mode session.DisplayMode, display string) {
	fmt.Fprintf(w, "%s%s\n", st.Label.Render(baseLabel(mode)), display)
}

// FormatUnits renders the display after a unit change, e.g. "Radian value: 0.5"
func FormatUnits(w io.Writer, st Styles, units session.UnitsMode, display string) {
	fmt.Fprintf(w, "\n%s%s\n", st.Label.Render(unitsLabel(units)), display)
}

// FormatGoodbye renders the farewell printed on quit
func FormatGoodbye(w io.Writer, st Styles) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Title.Render("(╯°□°）╯︵ ┻━┻  I'm done with this calculator!"))
}

func baseLabel(mode session.DisplayMode) string {
	switch mode {
	case session.Binary:
		return "Binary: "
	case session.Octal:
		return "Octal: "
	case session.Hexadecimal:
		return "Hexadecimal: "
	default:
		return "Decimal: "
	}
}

func unitsLabel(units session.UnitsMode) string {
	if units == session.Radians {
		return "Radian value: "
	}
	return "Degree value: "
}

package urlblocks

import (
	"strconv"

	"github.com/fatih/color"
)

// PrintURL pretty-prints the components of u, one per line. Component
// labels are highlighted when the component is present and dimmed when
// it is empty.
func PrintURL(u URL) {
	port := ""
	if p, ok := u.Port(); ok {
		port = strconv.Itoa(p)
	}
	printComponent("url", u.String())
	printComponent("scheme", u.Scheme())
	printComponent("username", u.Username())
	printComponent("password", u.Password())
	printComponent("subdomain", u.Subdomain())
	printComponent("hostname", u.Hostname())
	printComponent("port", port)
	printComponent("path", u.Path().String())
	printComponent("query", u.Query().String())
	printComponent("fragment", u.Fragment())
	color.New().Println("")
}

func printComponent(label, value string) {
	leftAttrs := []color.Attribute{color.FgHiYellow, color.Bold}
	if len(value) == 0 {
		leftAttrs = []color.Attribute{color.FgHiBlack}
	}
	color.New(leftAttrs...).Printf("%9s: ", label)
	color.New(color.FgHiWhite).Println(value)
}
